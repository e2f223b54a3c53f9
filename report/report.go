// Package report computes a subtraction and renders the result.
package report

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/loov/karmasub/config"
	"github.com/loov/karmasub/karma"
)

// Result is a single subtraction. Values are decimal strings so that one
// type covers every operand width.
type Result struct {
	A          string `json:"a"`
	B          string `json:"b"`
	Difference string `json:"difference"`
	Width      int    `json:"width"`
	Signed     bool   `json:"signed"`
	// Wrapped is set when a - b is not representable at Width and the
	// difference wrapped around.
	Wrapped bool `json:"wrapped"`
}

// Compute parses a and b as integers of the configured width and
// signedness and subtracts them. An operand outside the range of the
// width is an error.
func Compute(cfg config.Config, a, b string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	r := Result{Width: cfg.Width, Signed: cfg.Signed}
	exact := new(big.Int)
	var got *big.Int

	if cfg.Signed {
		x, err := strconv.ParseInt(a, 10, cfg.Width)
		if err != nil {
			return Result{}, fmt.Errorf("operand a: %w", err)
		}
		y, err := strconv.ParseInt(b, 10, cfg.Width)
		if err != nil {
			return Result{}, fmt.Errorf("operand b: %w", err)
		}

		var d int64
		switch cfg.Width {
		case 8:
			d = int64(karma.SubOf(int8(x), int8(y)))
		case 16:
			d = int64(karma.SubOf(int16(x), int16(y)))
		case 32:
			d = int64(karma.Sub(int32(x), int32(y)))
		case 64:
			d = karma.SubOf(x, y)
		}

		r.A, r.B = strconv.FormatInt(x, 10), strconv.FormatInt(y, 10)
		r.Difference = strconv.FormatInt(d, 10)
		exact.Sub(big.NewInt(x), big.NewInt(y))
		got = big.NewInt(d)
	} else {
		x, err := strconv.ParseUint(a, 10, cfg.Width)
		if err != nil {
			return Result{}, fmt.Errorf("operand a: %w", err)
		}
		y, err := strconv.ParseUint(b, 10, cfg.Width)
		if err != nil {
			return Result{}, fmt.Errorf("operand b: %w", err)
		}

		var d uint64
		switch cfg.Width {
		case 8:
			d = uint64(karma.SubOf(uint8(x), uint8(y)))
		case 16:
			d = uint64(karma.SubOf(uint16(x), uint16(y)))
		case 32:
			d = uint64(karma.SubOf(uint32(x), uint32(y)))
		case 64:
			d = karma.SubOf(x, y)
		}

		r.A, r.B = strconv.FormatUint(x, 10), strconv.FormatUint(y, 10)
		r.Difference = strconv.FormatUint(d, 10)
		exact.Sub(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		got = new(big.Int).SetUint64(d)
	}

	r.Wrapped = exact.Cmp(got) != 0
	return r, nil
}

// Write renders r to w in the given format: text, json or markdown.
func Write(w io.Writer, r Result, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, WriteText(r))
		return err
	case "json":
		data, err := WriteJSON(r)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "markdown":
		_, err := io.WriteString(w, WriteMarkdown(r))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteText returns the difference followed by a newline.
func WriteText(r Result) string {
	return r.Difference + "\n"
}
