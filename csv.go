package concavehull

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// CSV point I/O in the shape the command line tool consumes and produces:
// headerless x,y records, one point per line.

// ReadPoints parses points from headerless x,y records.
func ReadPoints(r io.Reader) ([]Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var points []Point
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading points")
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: bad x value %q", len(points)+1, record[0])
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d: bad y value %q", len(points)+1, record[1])
		}
		points = append(points, Point{X: x, Y: y})
	}
}

// ReadPointsFile reads a point cloud from a CSV file.
func ReadPointsFile(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	defer f.Close()
	points, err := ReadPoints(f)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return points, nil
}

// WritePoints writes points as headerless x,y records.
func WritePoints(w io.Writer, points []Point) error {
	writer := csv.NewWriter(w)
	for _, p := range points {
		record := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "writing points")
}

// WritePointsFile writes a point sequence, such as a traced hull, to a CSV
// file.
func WritePointsFile(path string, points []Point) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "writing points")
	}
	defer f.Close()
	if err := WritePoints(f, points); err != nil {
		return errors.Wrapf(err, "to %s", path)
	}
	return errors.Wrapf(f.Close(), "to %s", path)
}
