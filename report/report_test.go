package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loov/karmasub/config"
)

func TestCompute(t *testing.T) {
	int32Cfg := config.Default()
	byteCfg := config.Config{Width: 8, Signed: false, Format: "text"}
	int8Cfg := config.Config{Width: 8, Signed: true, Format: "text"}
	int64Cfg := config.Config{Width: 64, Signed: true, Format: "text"}
	uint64Cfg := config.Config{Width: 64, Signed: false, Format: "text"}

	tests := []struct {
		name string
		cfg  config.Config
		a, b string
		want Result
	}{
		{"positive", int32Cfg, "5", "3", Result{A: "5", B: "3", Difference: "2", Width: 32, Signed: true}},
		{"negative", int32Cfg, "3", "5", Result{A: "3", B: "5", Difference: "-2", Width: 32, Signed: true}},
		{"equal", int32Cfg, "-4", "-4", Result{A: "-4", B: "-4", Difference: "0", Width: 32, Signed: true}},
		{"int32 wrap", int32Cfg, "-2147483648", "1", Result{A: "-2147483648", B: "1", Difference: "2147483647", Width: 32, Signed: true, Wrapped: true}},
		{"int8 wrap", int8Cfg, "127", "-1", Result{A: "127", B: "-1", Difference: "-128", Width: 8, Signed: true, Wrapped: true}},
		{"byte", byteCfg, "200", "55", Result{A: "200", B: "55", Difference: "145", Width: 8}},
		{"byte wrap", byteCfg, "3", "5", Result{A: "3", B: "5", Difference: "254", Width: 8, Wrapped: true}},
		{"int64", int64Cfg, "9223372036854775807", "9223372036854775807", Result{A: "9223372036854775807", B: "9223372036854775807", Difference: "0", Width: 64, Signed: true}},
		{"int64 wrap", int64Cfg, "9223372036854775807", "-1", Result{A: "9223372036854775807", B: "-1", Difference: "-9223372036854775808", Width: 64, Signed: true, Wrapped: true}},
		{"uint64 wrap", uint64Cfg, "0", "1", Result{A: "0", B: "1", Difference: "18446744073709551615", Width: 64, Wrapped: true}},
		{"leading plus", int32Cfg, "+7", "2", Result{A: "7", B: "2", Difference: "5", Width: 32, Signed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.cfg, tt.a, tt.b)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeErrors(t *testing.T) {
	byteCfg := config.Config{Width: 8, Signed: false, Format: "text"}

	tests := []struct {
		name string
		cfg  config.Config
		a, b string
	}{
		{"not a number", config.Default(), "five", "3"},
		{"b not a number", config.Default(), "5", "3.5"},
		{"out of range", config.Default(), "2147483648", "0"},
		{"negative unsigned", byteCfg, "-1", "0"},
		{"byte out of range", byteCfg, "0", "256"},
		{"bad width", config.Config{Width: 7, Format: "text"}, "1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.cfg, tt.a, tt.b); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWrite(t *testing.T) {
	r := Result{A: "5", B: "3", Difference: "2", Width: 32, Signed: true}

	var buf bytes.Buffer
	if err := Write(&buf, r, "text"); err != nil {
		t.Fatalf("Write text: %v", err)
	}
	if got := buf.String(); got != "2\n" {
		t.Errorf("text = %q, want %q", got, "2\n")
	}

	buf.Reset()
	if err := Write(&buf, r, "json"); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if diff := cmp.Diff(r, decoded); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := Write(&buf, r, "markdown"); err != nil {
		t.Fatalf("Write markdown: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty markdown output")
	}

	if err := Write(&buf, r, "auto"); err == nil {
		t.Error("expected error for unresolved format")
	}
}
