package domain

import "testing"

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Address
		wantErr bool
	}{
		{name: "valid lowercase", input: "0x00000000000000000000000000000000deadbeef", want: "0x00000000000000000000000000000000deadbeef"},
		{name: "uppercase normalized", input: "0x00000000000000000000000000000000DEADBEEF", want: "0x00000000000000000000000000000000deadbeef"},
		{name: "surrounding whitespace", input: "  0x00000000000000000000000000000000deadbeef ", want: "0x00000000000000000000000000000000deadbeef"},
		{name: "empty", input: "", wantErr: true},
		{name: "missing prefix", input: "00000000000000000000000000000000deadbeef", wantErr: true},
		{name: "too short", input: "0xdeadbeef", wantErr: true},
		{name: "non-hex characters", input: "0x00000000000000000000000000000000deadbezz", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAddress(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestNativeAddressSentinel(t *testing.T) {
	if !NativeAddress.IsNative() {
		t.Fatalf("native sentinel must report IsNative")
	}
	other := Address("0x00000000000000000000000000000000deadbeef")
	if other.IsNative() {
		t.Fatalf("token address must not report IsNative")
	}
}

func TestParseVaultID(t *testing.T) {
	id := NewVaultID()
	parsed, err := ParseVaultID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != id {
		t.Fatalf("round trip mismatch")
	}

	if _, err := ParseVaultID(""); err == nil {
		t.Fatalf("expected error for empty ID")
	}
	if _, err := ParseVaultID("not-a-uuid"); err == nil {
		t.Fatalf("expected error for malformed ID")
	}
}
