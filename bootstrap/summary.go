package bootstrap

import (
	"fmt"
	"io"
	"time"
)

// ExporterInfo describes a telemetry exporter set up during startup.
type ExporterInfo struct {
	Name     string
	Endpoint string
	Enabled  bool
}

// SettingInfo is one effective setting worth showing at startup.
type SettingInfo struct {
	Key   string
	Value string
}

// Summary tracks and displays the application startup.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	exporters       []ExporterInfo
	settings        []SettingInfo
}

// NewSummary creates a new startup summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackExporter records a telemetry exporter.
func (s *Summary) TrackExporter(name, endpoint string, enabled bool) {
	s.exporters = append(s.exporters, ExporterInfo{
		Name:     name,
		Endpoint: endpoint,
		Enabled:  enabled,
	})
}

// TrackSetting records a setting. Values are formatted with %v.
func (s *Summary) TrackSetting(key string, value any) {
	s.settings = append(s.settings, SettingInfo{Key: key, Value: fmt.Sprint(value)})
}

// Display prints the summary to w.
func (s *Summary) Display(w io.Writer) {
	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n", s.serviceName, s.version, s.startupDuration.Seconds())

	if len(s.settings) > 0 {
		fmt.Fprintf(w, "\n⚙️  Settings\n")
		for i, st := range s.settings {
			fmt.Fprintf(w, "   %s %s: %s\n", treePrefix(i, len(s.settings)), st.Key, st.Value)
		}
	}

	if len(s.exporters) > 0 {
		fmt.Fprintf(w, "\n📊 Telemetry\n")
		for i, e := range s.exporters {
			if e.Enabled {
				fmt.Fprintf(w, "   %s ✅ %s → %s\n", treePrefix(i, len(s.exporters)), e.Name, e.Endpoint)
			} else {
				fmt.Fprintf(w, "   %s ⏸️ %s (disabled)\n", treePrefix(i, len(s.exporters)), e.Name)
			}
		}
	}

	fmt.Fprintf(w, "\n")
}

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}
