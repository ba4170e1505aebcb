package jsonutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
		{
			name:    "empty body",
			data:    []byte("  \n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"string", "hello", "hello"},
		{"float64 whole", 42.0, "42"},
		{"float64 decimal", 3.14, "3.14"},
		{"json number", json.Number("123456789012"), "123456789012"},
		{"bool true", true, "true"},
		{"nil", nil, ""},
		{"int", 123, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.v); got != tt.want {
				t.Errorf("ToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want ID
	}{
		{"large number", `{"id": 5123456789}`, "5123456789"},
		{"negative chat id", `{"id": -1001234567890}`, "-1001234567890"},
		{"string", `{"id": "abc"}`, "abc"},
		{"null", `{"id": null}`, ""},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID ID `json:"id"`
			}
			if err := json.Unmarshal([]byte(tt.data), &v); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if v.ID != tt.want {
				t.Errorf("ID = %q, want %q", v.ID, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   time.Time
		wantOK bool
	}{
		{"naive microseconds", "2024-05-01T10:20:30.123456", time.Date(2024, 5, 1, 10, 20, 30, 123456000, time.UTC), true},
		{"naive seconds", "2024-05-01T10:20:30", time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC), true},
		{"rfc3339", "2024-05-01T10:20:30Z", time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC), true},
		{"space separated", "2024-05-01 10:20:30", time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTime(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseTime(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTime_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Time `json:"a"`
		B Time `json:"b"`
		C Time `json:"c"`
		D Time `json:"d"`
	}
	data := `{"a": "2024-05-01T10:20:30", "b": "not a date", "c": null, "d": 1714558830}`
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A.IsZero() {
		t.Error("expected a to be parsed")
	}
	if !v.B.IsZero() {
		t.Errorf("expected unparsable b to be zero, got %v", v.B)
	}
	if !v.C.IsZero() {
		t.Errorf("expected null c to be zero, got %v", v.C)
	}
	if !v.D.Equal(time.Unix(1714558830, 0)) {
		t.Errorf("expected unix d, got %v", v.D)
	}
}

func TestTime_MarshalJSON(t *testing.T) {
	zero, err := json.Marshal(Time{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(zero) != "null" {
		t.Errorf("zero time = %s, want null", zero)
	}
	ts, _ := json.Marshal(Time{Time: time.Date(2024, 5, 1, 10, 20, 30, 0, time.UTC)})
	if string(ts) != `"2024-05-01T10:20:30Z"` {
		t.Errorf("time = %s", ts)
	}
}
