package http

import (
	"errors"
	"testing"
)

func TestTelValidation(t *testing.T) {
	type P struct {
		Tel string `validate:"tel"`
	}
	cv := NewValidator()

	// valid: exactly 10 digits, starting 0 or 94
	for _, s := range []string{"0711234567", "0112345678", "9471123456"} {
		if err := cv.Validate(P{Tel: s}); err != nil {
			t.Fatalf("expected valid tel %q, got err: %v", s, err)
		}
	}

	// invalid samples
	for _, s := range []string{
		"",            // empty
		"071123456",   // 9 digits
		"07112345678", // 11 digits
		"1711234567",  // wrong prefix
		"07112345a7",  // non-digit
		"+9471123456", // plus sign
	} {
		err := cv.Validate(P{Tel: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Tel", "10 digits") {
			t.Fatalf("missing tel message for %q: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Salary float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, f := range []float64{50000, 50000.5, 50000.55} {
		if err := cv.Validate(P{Salary: f}); err != nil {
			t.Fatalf("expected valid dec2 %v, got err: %v", f, err)
		}
	}
	if err := cv.Validate(P{Salary: 50000.555}); err == nil {
		t.Fatal("expected error for 3 decimal places")
	}
}

func TestSubmitReqValidation(t *testing.T) {
	cv := NewValidator()

	good := submitReq{
		Name:       "Alice",
		Email:      "a@x.com",
		Tel:        "0711234567",
		Occupation: "Clerk",
		Salary:     50000,
	}
	if err := cv.Validate(&good); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := submitReq{Email: "not-an-email", Tel: "123", Salary: -1}
	err := cv.Validate(&bad)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Name", "required") {
		t.Fatalf("missing name error: %+v", fe)
	}
	if !containsFieldMsg(fe, "Email", "email") {
		t.Fatalf("missing email error: %+v", fe)
	}
	if !containsFieldMsg(fe, "Tel", "10 digits") {
		t.Fatalf("missing tel error: %+v", fe)
	}
	if !containsFieldMsg(fe, "Salary", "greater than") {
		t.Fatalf("missing salary error: %+v", fe)
	}
}

func TestUpdateReqValidation_OmittedFieldsPass(t *testing.T) {
	cv := NewValidator()

	// nothing set: a no-op patch is still a valid payload
	if err := cv.Validate(&updateReq{}); err != nil {
		t.Fatalf("empty update rejected: %v", err)
	}

	badStatus := "maybe"
	if err := cv.Validate(&updateReq{Status: &badStatus}); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestToFieldErrors_NonValidationError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}
