package reportfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"faultline/internal/report"
)

// Msgpack writes reports to w as a MessagePack stream: a count followed
// by one map-encoded report per entry. Suitable for piping into other
// tools without paying JSON overhead.
func Msgpack(w io.Writer, reports []*report.Report) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(len(reports)); err != nil {
		return fmt.Errorf("encode report count: %w", err)
	}
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report %s: %w", r.Path, err)
		}
	}
	return nil
}

// ReadMsgpack decodes a stream produced by Msgpack.
func ReadMsgpack(r io.Reader) ([]*report.Report, error) {
	dec := msgpack.NewDecoder(r)
	dec.SetCustomStructTag("json")
	var count int
	if err := dec.Decode(&count); err != nil {
		return nil, fmt.Errorf("decode report count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("invalid report count %d", count)
	}
	reports := make([]*report.Report, 0, count)
	for i := 0; i < count; i++ {
		var rep report.Report
		if err := dec.Decode(&rep); err != nil {
			return nil, fmt.Errorf("decode report %d: %w", i, err)
		}
		reports = append(reports, &rep)
	}
	return reports, nil
}
