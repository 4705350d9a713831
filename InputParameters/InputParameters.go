package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"

	"github.com/DavidAnderegg/pysurf/curves"
	"github.com/DavidAnderegg/pysurf/sections"
)

// Parameters obtained from the YAML input file
type CurveInput struct {
	Title  string      `json:"Title"`
	Base   int         `json:"Base"`   // Index of the first point, 0 or 1
	Strict bool        `json:"Strict"` // Require a single polyline per curve
	Curves []CurveBars `json:"Curves"`
}

type CurveBars struct {
	Name string  `json:"Name"`
	Bars [][]int `json:"Bars"` // Each bar is read as a list so a wrong entry count is caught
}

func (ip *CurveInput) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	for _, c := range ip.Curves {
		if err = c.checkBars(); err != nil {
			return
		}
	}
	return
}

func (c CurveBars) checkBars() error {
	for j, bar := range c.Bars {
		if len(bar) != 2 {
			return fmt.Errorf("curve %q bar %d = %v has %d entries, a bar joins exactly 2 points",
				sections.FormatName(c.Name), j, bar, len(bar))
		}
	}
	return nil
}

func (ip *CurveInput) Validate() (err error) {
	if ip.Base != 0 && ip.Base != 1 {
		return fmt.Errorf("base must be 0 or 1, have %d", ip.Base)
	}
	if len(ip.Curves) == 0 {
		return fmt.Errorf("no curves defined in input")
	}
	names := make(map[string]bool, len(ip.Curves))
	for i, c := range ip.Curves {
		name := sections.FormatName(c.Name)
		if len(name) == 0 {
			return fmt.Errorf("curve %d has no name", i)
		}
		if names[name] {
			return fmt.Errorf("curve %q is defined more than once", name)
		}
		names[name] = true
		if err = c.checkBars(); err != nil {
			return
		}
		for j, bar := range c.Bars {
			if bar[0] < ip.Base || bar[1] < ip.Base {
				return fmt.Errorf("curve %q bar %d = %v references a point below base %d", name, j, bar, ip.Base)
			}
		}
	}
	return
}

// Source packs the curves into global bar connectivity with 1-based section pointers
func (ip *CurveInput) Source() (src sections.Source) {
	src.CurveBarsPtr = make([]int, 1, len(ip.Curves)+1)
	src.CurveBarsPtr[0] = 1
	for _, c := range ip.Curves {
		for _, bar := range c.Bars {
			src.BarsConn = append(src.BarsConn, curves.Edge{bar[0], bar[1]})
		}
		src.CurveBarsPtr = append(src.CurveBarsPtr, len(src.BarsConn)+1)
		src.CurveNames = append(src.CurveNames, c.Name)
	}
	return
}

func (ip *CurveInput) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Base\n", ip.Base)
	fmt.Fprintf(w, "[%v]\t\t\t= Strict\n", ip.Strict)
	for _, c := range ip.Curves {
		fmt.Fprintf(w, "Curves[%s] = %d bars\n", c.Name, len(c.Bars))
	}
}
