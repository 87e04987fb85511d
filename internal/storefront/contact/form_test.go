package contact

import (
	"errors"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"test@example.com",
		"user.name@example.com",
		"user+tag@example.co.uk",
		"user123@test-domain.com",
		"user.name.test@example.co.uk",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{
		"",
		"invalid",
		"invalid@",
		"@example.com",
		"invalid@.com",
		"invalid@domain",
		"invalid @example.com",
		"invalid@ example.com",
		" invalid@example.com",
		"userexample.com",
		"user@example",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	t.Parallel()

	got, err := Validate(Form{Name: " Ada ", Email: " ada@example.com ", Request: " More pears "})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	want := Form{Name: "Ada", Email: "ada@example.com", Request: "More pears"}
	if got != want {
		t.Fatalf("Validate() = %#v, want %#v", got, want)
	}
}

func TestValidateReportsEveryFailingField(t *testing.T) {
	t.Parallel()

	_, err := Validate(Form{Email: "nope"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if len(verr.Fields) != 3 || verr.Fields[0] != FieldName || verr.Fields[1] != FieldEmail || verr.Fields[2] != FieldRequest {
		t.Fatalf("fields = %v", verr.Fields)
	}
	for _, target := range []error{ErrNameRequired, ErrEmailInvalid, ErrRequestRequired} {
		if !errors.Is(err, target) {
			t.Fatalf("errors.Is(%v) = false", target)
		}
	}

	_, err = Validate(Form{Name: "Ada", Email: "ada@example.com"})
	if !errors.As(err, &verr) || !verr.Has(FieldRequest) || verr.Has(FieldName) {
		t.Fatalf("Validate() missing request error = %v", err)
	}
}
