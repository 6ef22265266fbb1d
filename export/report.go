package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/paretodp/dp"
)

// Report is the machine-readable console summary of one solve. Non-finite
// costs are encoded as null.
type Report struct {
	File      string           `json:"file,omitempty"`
	Criterion string           `json:"criterion"`
	Points    int              `json:"points"`
	Dimension int              `json:"dimension"`
	Clusters  int              `json:"clusters"`
	Cost      *float64         `json:"cost"`
	Status    string           `json:"status"`
	Complete  bool             `json:"complete"`
	Verified  *float64         `json:"verified,omitempty"`
	Intervals []ReportInterval `json:"intervals"`
	Front     []ReportFront    `json:"front,omitempty"`
}

// ReportInterval is one cluster of the partition in sorted order.
type ReportInterval struct {
	Cluster int `json:"cluster"`
	Start   int `json:"start"`
	End     int `json:"end"`
	Size    int `json:"size"`
}

// ReportFront is the optimal cost for one cluster count.
type ReportFront struct {
	K    int      `json:"k"`
	Cost *float64 `json:"cost"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}

// NewReport snapshots e. file is informational and may be empty.
func NewReport(e *dp.Engine, file string) Report {
	sol := e.Solution()
	r := Report{
		File:      file,
		Criterion: e.Criterion().String(),
		Clusters:  e.ClusterCount(),
		Cost:      finiteOrNil(sol.Cost),
		Status:    sol.Status.String(),
		Complete:  sol.Complete,
		Intervals: make([]ReportInterval, len(sol.Intervals)),
	}
	if ps := e.Points(); ps != nil {
		r.Points, r.Dimension = ps.N(), ps.D()
	}
	for i, iv := range sol.Intervals {
		r.Intervals[i] = ReportInterval{Cluster: i + 1, Start: iv.Start, End: iv.End, Size: iv.Len()}
	}
	for k, c := range e.ParetoFront() {
		r.Front = append(r.Front, ReportFront{K: k + 1, Cost: finiteOrNil(c)})
	}

	return r
}

// WithVerified records an independently recomputed cost.
func (r Report) WithVerified(v float64) Report {
	r.Verified = finiteOrNil(v)
	return r
}

// WriteReport encodes r as "json" or "yaml".
func WriteReport(w io.Writer, r Report, format string) error {
	var (
		out []byte
		err error
	)
	switch strings.ToLower(format) {
	case "json":
		out, err = json.MarshalIndent(r, "", "  ")
		out = append(out, '\n')
	case "yaml", "yml":
		out, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("export: unknown report format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export: encode report: %w", err)
	}
	_, err = w.Write(out)

	return err
}
