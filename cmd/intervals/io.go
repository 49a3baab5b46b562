package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/model"
	"github.com/uyouii/display-intervals/utils"
)

// readValues parses whitespace or comma separated numbers. "nan" and
// "inf" are accepted the way strconv.ParseFloat accepts them.
func readValues(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	scanner.Split(bufio.ScanWords)

	values := []float64{}
	for scanner.Scan() {
		for _, field := range strings.Split(scanner.Text(), ",") {
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "value %d", len(values)+1)
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func writeResult(w io.Writer, res *model.DisplayRange, printValues bool, precision int32) error {
	if _, err := fmt.Fprintf(w, "strategy: %s\nvmin: %v\nvmax: %v\n",
		res.Strategy, res.Limits.Vmin, res.Limits.Vmax); err != nil {
		return err
	}
	if !printValues {
		return nil
	}

	bw := bufio.NewWriter(w)
	for _, v := range utils.FormatFloats(res.Values, precision) {
		if _, err := fmt.Fprintln(bw, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
