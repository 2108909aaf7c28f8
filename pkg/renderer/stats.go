package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width
	Height      int           // Image height
	TotalPixels int           // Total number of pixels rendered
	Rows        int           // Rows completed by the worker pool
	Hits        int           // Pixels whose ray hit an object
	Workers     int           // Number of workers used
	Duration    time.Duration // Wall clock render time
}

// HitRatio returns the fraction of pixels that hit an object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}

// WriteTable renders the stats as a text table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Pixels", "Hits", "% hit", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.Hits),
		fmt.Sprintf("%02.1f %%", s.HitRatio()*100),
		fmt.Sprintf("%d", s.Workers),
		s.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "CPU", cpuName()})
	table.Render()
}

func cpuName() string {
	if cpuid.CPU.BrandName == "" {
		return "unknown cpu"
	}
	return cpuid.CPU.BrandName
}
