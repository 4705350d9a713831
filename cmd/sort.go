/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/DavidAnderegg/pysurf/InputParameters"
	"github.com/DavidAnderegg/pysurf/sections"
)

type SortOutput struct {
	Title  string        `json:"Title"`
	Curves []CurveOutput `json:"Curves"`
}

type CurveOutput struct {
	Name      string   `json:"Name"`
	Sorted    bool     `json:"Sorted"`
	Polylines [][]int  `json:"Polylines,omitempty"`
	Closed    []bool   `json:"Closed,omitempty"`
	Bars      [][2]int `json:"Bars"`
	Branches  []int    `json:"Branches,omitempty"`
}

const exampleFile = `
########################################
Title: "Wing Body"
Base: 1
Strict: false # Require one polyline per curve
Curves:
  - Name: Intersection
    Bars: [[3, 4], [1, 2], [2, 3]]
########################################
`

// SortCmd represents the sort command
var SortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Order the bar elements of each curve into polylines",
	Long: `Reads named curves of unordered bar elements from a YAML input file and orders each one into
head-to-tail polylines. Curves that can not be sorted keep their original bars and are reported.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			inputFile, outputFile string
			data                  []byte
		)
		if inputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			return
		}
		if outputFile, err = cmd.Flags().GetString("outputFile"); err != nil {
			return
		}
		if len(inputFile) == 0 {
			return fmt.Errorf("must supply an input file (-I, --inputFile), example file:%s", exampleFile)
		}
		if data, err = os.ReadFile(inputFile); err != nil {
			return
		}
		ip := &InputParameters.CurveInput{}
		if err = ip.Parse(data); err != nil {
			return fmt.Errorf("unable to parse %s: %w", inputFile, err)
		}
		if err = ip.Validate(); err != nil {
			return fmt.Errorf("invalid input %s: %w", inputFile, err)
		}
		if viper.GetBool("verbose") {
			ip.Print(cmd.ErrOrStderr())
		}
		strict := ip.Strict || viper.GetBool("strict")
		out, err := RunSort(ip, strict)
		if err != nil {
			return
		}
		if data, err = yaml.Marshal(out); err != nil {
			return
		}
		if len(outputFile) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return
		}
		if err = os.WriteFile(outputFile, data, 0644); err != nil {
			return
		}
		PrintSummary(cmd.OutOrStdout(), out)
		return
	},
}

func init() {
	rootCmd.AddCommand(SortCmd)
	SortCmd.Flags().StringP("inputFile", "I", "", "YAML file of named curves, each a list of bars")
	SortCmd.Flags().StringP("outputFile", "o", "", "YAML file for the sorted curves, stdout when not set")
	SortCmd.Flags().Bool("strict", false, "require every curve to sort into a single polyline")
	bindSortFlags()
}

func bindSortFlags() {
	_ = viper.BindPFlag("strict", SortCmd.Flags().Lookup("strict"))
}

func RunSort(ip *InputParameters.CurveInput, strict bool) (out *SortOutput, err error) {
	var (
		s *sections.Sections
	)
	logger.Info("sorting curves", zap.String("title", ip.Title), zap.Int("curves", len(ip.Curves)))
	if s, err = sections.Split(ip.Source(), sections.WithLogger(logger), sections.WithStrict(strict)); err != nil {
		return
	}
	out = &SortOutput{Title: ip.Title}
	for _, name := range s.CurveNames() {
		cs, _ := s.Curve(name)
		co := CurveOutput{
			Name:     name,
			Sorted:   cs.Sorted,
			Branches: cs.Result.Branches,
		}
		if cs.Sorted {
			for _, de := range cs.Directed {
				co.Bars = append(co.Bars, de.GetVertices())
			}
		} else {
			for _, bar := range cs.BarsConn {
				co.Bars = append(co.Bars, [2]int(bar))
			}
		}
		for _, p := range cs.Result.Polylines {
			co.Polylines = append(co.Polylines, []int(p))
			co.Closed = append(co.Closed, p.Closed())
		}
		out.Curves = append(out.Curves, co)
	}
	return
}

func PrintSummary(w io.Writer, out *SortOutput) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", out.Title)
	for _, c := range out.Curves {
		status := "sorted"
		if !c.Sorted {
			status = "unsorted"
		}
		fmt.Fprintf(w, "Curves[%s] = %s, %d bars, %d polylines", c.Name, status, len(c.Bars), len(c.Polylines))
		if len(c.Branches) != 0 {
			fmt.Fprintf(w, ", branches %v", c.Branches)
		}
		fmt.Fprintln(w)
	}
}
