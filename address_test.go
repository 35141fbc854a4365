package covault

import (
	"encoding/json"
	"testing"

	"github.com/covault-io/covault/errors"
)

func TestNewAddressIsValid(t *testing.T) {
	a := NewAddress([]byte("some seed material"))
	if err := a.Validate(); err != nil {
		t.Fatalf("derived address must be valid: %+v", err)
	}
	if len(a) != AddressLength {
		t.Fatalf("unexpected length: %d", len(a))
	}
	b := NewAddress([]byte("other seed material"))
	if a.Equals(b) {
		t.Fatal("different input must produce different addresses")
	}
}

func TestNewAddressNil(t *testing.T) {
	if a := NewAddress(nil); a != nil {
		t.Fatalf("nil input must produce nil address, got %s", a)
	}
}

func TestAddressValidate(t *testing.T) {
	cases := map[string]struct {
		addr     Address
		wantKind *errors.Error
	}{
		"valid":     {addr: NewAddress([]byte("x")), wantKind: nil},
		"nil":       {addr: nil, wantKind: errors.ErrEmpty},
		"empty":     {addr: Address{}, wantKind: errors.ErrEmpty},
		"too short": {addr: Address{1, 2, 3}, wantKind: errors.ErrInput},
		"zero":      {addr: make(Address, 20), wantKind: errors.ErrInput},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.addr.Validate()
			if tc.wantKind == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !tc.wantKind.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestAddressJSONRoundTrip(t *testing.T) {
	a := NewAddress([]byte("round trip"))
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %+v", err)
	}

	var b Address
	if err := json.Unmarshal(raw, &b); err != nil {
		t.Fatalf("unmarshal: %+v", err)
	}
	if !a.Equals(b) {
		t.Fatalf("round trip mismatch: %s != %s", a, b)
	}
}

func TestParseAddress(t *testing.T) {
	a := NewAddress([]byte("parse me"))
	got, err := ParseAddress(a.String())
	if err != nil {
		t.Fatalf("parse: %+v", err)
	}
	if !a.Equals(got) {
		t.Fatalf("mismatch: %s != %s", a, got)
	}

	if _, err := ParseAddress("not hex"); !errors.ErrInput.Is(err) {
		t.Fatalf("want ErrInput, got %+v", err)
	}
	if _, err := ParseAddress("00ff"); !errors.ErrInput.Is(err) {
		t.Fatalf("short address must not validate, got %+v", err)
	}
}

func TestAddressClone(t *testing.T) {
	a := NewAddress([]byte("clone"))
	b := a.Clone()
	b[0]++
	if a.Equals(b) {
		t.Fatal("clone must be independent")
	}
}
