package value

import "testing"

func TestInternSignatureStableAndDistinct(t *testing.T) {
	a := InternSignature("call(_,_)")
	b := InternSignature("call(_,_)")
	if a != b {
		t.Error("interning the same signature string twice must return the same id")
	}
	c := InternSignature("call(_,_,_)")
	if a == c {
		t.Error("distinct signature strings must intern to distinct ids")
	}
	if SignatureName(a) != "call(_,_)" {
		t.Errorf("SignatureName(a) = %q, want call(_,_)", SignatureName(a))
	}
}

func TestSignatureNameOutOfRange(t *testing.T) {
	if got := SignatureName(Signature(-1)); got != "" {
		t.Errorf("SignatureName(-1) = %q, want empty", got)
	}
}
