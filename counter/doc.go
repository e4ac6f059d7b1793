/*
Package counter counts tracked objects crossing a user defined boundary.

A boundary is either a two point line segment or a closed polygon.  Each frame
the upstream tracker reports its objects as track id, class id and bounding
box.  The centroid of every box is appended to the history of its track and
the movement from the previous centroid is tested against the boundary.  The
first crossing of a track is counted as In or Out, per class and in total,
and the track is never counted again for the rest of the session.

Direction follows the dominant axis of the boundary.  For a boundary that is
taller than it is wide, motion towards increasing x is In, otherwise motion
towards increasing y is In.

A Session holds all counting state for one stream.  A Processor binds a
Session to a Tracker and Renderer over any image type.
*/
package counter
