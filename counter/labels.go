package counter

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// UnknownClass is the name given to class ids that have no label
const UnknownClass = "Unknown"

// ClassNames maps detector class ids to names by index
type ClassNames []string

// Name returns the name of the class id, or UnknownClass when the id is out
// of range or has an empty label
func (c ClassNames) Name(id int) string {

	if id < 0 || id >= len(c) || c[id] == "" {
		return UnknownClass
	}

	return c[id]
}

// LoadClassNames reads the labels the detector model was trained on from the
// given text file, one label per line with the line number being the class
// id.  Blank lines keep their position so ids stay aligned.
func LoadClassNames(file string) (ClassNames, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening labels file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var names ClassNames

	for scanner.Scan() {
		names = append(names, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading labels file: %w", err)
	}

	// strip trailing blank lines, they carry no class
	for len(names) > 0 && names[len(names)-1] == "" {
		names = names[:len(names)-1]
	}

	return names, nil
}
