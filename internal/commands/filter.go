package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rajeev00723/tng-ewallet-visualizer/internal/model"
	"github.com/rajeev00723/tng-ewallet-visualizer/internal/report"
)

// flagDateLayout is the date form taken by --from / --to.
const flagDateLayout = "2006-01-02"

// filterFlags are the transaction-filter flags shared by report and
// export.
type filterFlags struct {
	from  string
	to    string
	types []string
	min   string
	max   string
	name  string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "start date, YYYY-MM-DD, inclusive")
	cmd.Flags().StringVar(&f.to, "to", "", "end date, YYYY-MM-DD, inclusive")
	cmd.Flags().StringArrayVar(&f.types, "type", nil, "transaction type to keep (repeatable)")
	cmd.Flags().StringVar(&f.min, "min", "", "minimum signed amount, inclusive")
	cmd.Flags().StringVar(&f.max, "max", "", "maximum signed amount, inclusive")
	cmd.Flags().StringVar(&f.name, "name", "", "counterparty name substring, case-insensitive")
}

// build converts the flag strings into a report.Filter.
func (f *filterFlags) build() (report.Filter, error) {
	var out report.Filter

	if f.from != "" {
		d, err := time.Parse(flagDateLayout, f.from)
		if err != nil {
			return out, fmt.Errorf("parsing --from %q: %w", f.from, err)
		}
		out.From = d
	}
	if f.to != "" {
		d, err := time.Parse(flagDateLayout, f.to)
		if err != nil {
			return out, fmt.Errorf("parsing --to %q: %w", f.to, err)
		}
		out.To = d
	}
	for _, s := range f.types {
		typ, ok := model.ParseType(s)
		if !ok {
			return out, fmt.Errorf("unknown transaction type %q", s)
		}
		out.Types = append(out.Types, typ)
	}
	if f.min != "" {
		v, err := decimal.NewFromString(f.min)
		if err != nil {
			return out, fmt.Errorf("parsing --min %q: %w", f.min, err)
		}
		out.Min = &v
	}
	if f.max != "" {
		v, err := decimal.NewFromString(f.max)
		if err != nil {
			return out, fmt.Errorf("parsing --max %q: %w", f.max, err)
		}
		out.Max = &v
	}
	out.Name = f.name

	return out, nil
}
