package nisttab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/arloliu/go-thermocouple/units"
)

var (
	// ErrEmptyTable indicates that a table contains no data rows.
	ErrEmptyTable = errors.New("table has no data rows")

	// ErrMalformedRow indicates that a data row could not be parsed.
	ErrMalformedRow = errors.New("malformed table row")

	// ErrConflict indicates that the same temperature appears twice with different voltages.
	ErrConflict = errors.New("conflicting table entries")
)

// Point is one (temperature, voltage) pair of a reference table.
type Point struct {
	Temperature units.Celsius
	Voltage     units.Millivolts
}

// maxColumns is the number of voltage columns of a NIST table row.
const maxColumns = 11

// ReadFile reads a reference table from a file.
func ReadFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return points, nil
}

// Read reads a reference table and returns its points sorted by temperature.
//
// Repeated temperatures, such as the last column of one row and the first column of the next,
// are merged; they must carry the same voltage.
func Read(r io.Reader) ([]Point, error) {
	seen := make(map[units.Celsius]units.Millivolts)
	step := 0 // column direction announced by the last header, 0 when unknown

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		decade, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			if dir, ok := headerDirection(fields); ok {
				step = dir
			}
			continue
		}

		if len(fields)-1 > maxColumns {
			return nil, fmt.Errorf("%w: line %d has %d columns", ErrMalformedRow, lineNo, len(fields)-1)
		}

		dir := step
		if dir == 0 {
			dir = 1
			if decade < 0 {
				dir = -1
			}
		}

		for i, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrMalformedRow, lineNo, i, field)
			}

			temp := units.Celsius(decade + float64(dir*i))
			volt := units.Millivolts(v)
			if prev, ok := seen[temp]; ok {
				if prev != volt {
					return nil, fmt.Errorf("%w: %v is both %v and %v (line %d)", ErrConflict, temp, prev, volt, lineNo)
				}
				continue
			}
			seen[temp] = volt
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(seen) == 0 {
		return nil, ErrEmptyTable
	}

	points := make([]Point, 0, len(seen))
	for temp, volt := range seen {
		points = append(points, Point{Temperature: temp, Voltage: volt})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Temperature < points[j].Temperature
	})

	return points, nil
}

// headerDirection inspects a column header such as "°C 0 -1 -2 ..." and returns the column step.
func headerDirection(fields []string) (int, bool) {
	if len(fields) < 3 {
		return 0, false
	}

	unit := strings.TrimLeft(fields[0], "°º")
	if !strings.EqualFold(unit, "C") {
		return 0, false
	}

	second, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, false
	}
	if second < 0 {
		return -1, true
	}

	return 1, true
}
