package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSVGFlagErrors(t *testing.T) {
	tests := []struct {
		name  string
		flags func(*cobra.Command)
		want  string
	}{
		{"undefined height", func(c *cobra.Command) {
			c.Flags().Int("width", 975, "")
		}, "height"},
		{"zero width", func(c *cobra.Command) {
			c.Flags().Int("width", 0, "")
			c.Flags().Int("height", 610, "")
			c.Flags().String("output", "-", "")
		}, "invalid size 0x610"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "svg"}
			tt.flags(cmd)
			err := runSVG(cmd, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestServeBindError(t *testing.T) {
	cmd := &cobra.Command{Use: "serve"}
	err := runServe(cmd, nil)
	if err == nil || !strings.Contains(err.Error(), "binding --port") {
		t.Errorf("err = %v", err)
	}
}
