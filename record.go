package img2se

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// DefaultPrecision is the number of decimals written for HSV channels.
const DefaultPrecision = 2

// Trailing constant fields of every record.
const (
	recordOrientation = "0"
	recordMaterial    = "4"
	recordFlag        = "1"
)

// BlockRecord places one block in the blueprint.
type BlockRecord struct {
	TypeID  uuid.UUID
	X, Y, Z int
	Color   HSV
}

// AppendText appends the pipe-separated form of r, without a newline.
// HSV channels use prec decimals; a negative prec writes the shortest
// representation. The decimal separator is always '.'.
func (r BlockRecord) AppendText(b []byte, prec int) []byte {
	b = append(b, r.TypeID.String()...)
	b = append(b, '|')
	b = strconv.AppendInt(b, int64(r.X), 10)
	b = append(b, '|')
	b = strconv.AppendInt(b, int64(r.Y), 10)
	b = append(b, '|')
	b = strconv.AppendInt(b, int64(r.Z), 10)
	b = append(b, '|')
	for _, v := range [3]float64{r.Color.Hue, r.Color.Saturation, r.Color.Value} {
		b = strconv.AppendFloat(b, v, 'f', prec, 64)
		b = append(b, '|')
	}
	b = append(b, recordOrientation...)
	b = append(b, '|')
	b = append(b, recordMaterial...)
	b = append(b, '|')
	b = append(b, recordFlag...)
	b = append(b, '|')
	return b
}

func (r BlockRecord) String() string {
	return string(r.AppendText(nil, DefaultPrecision))
}

// WriteRecords writes one line per record to w.
func WriteRecords(w io.Writer, records []BlockRecord, prec int) error {
	bw := bufio.NewWriter(w)
	var line []byte
	for _, r := range records {
		line = r.AppendText(line[:0], prec)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// WriteFile creates (or truncates) path and writes records to it.
func WriteFile(path string, records []BlockRecord, prec int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()
	if err := WriteRecords(f, records, prec); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

