package passwords

import "testing"

func TestHashVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	digest, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "" || digest == "secret" {
		t.Fatalf("digest looks wrong: %q", digest)
	}
	if !Verify(digest, "secret") {
		t.Fatalf("expected digest to verify against original plaintext")
	}
	if Verify(digest, "Secret") {
		t.Fatalf("expected mismatching plaintext to fail verification")
	}
}

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash a: %v", err)
	}
	b, err := Hash("secret")
	if err != nil {
		t.Fatalf("Hash b: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
	if !Verify(a, "secret") || !Verify(b, "secret") {
		t.Fatalf("both digests must verify against the shared password")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()

	for _, digest := range []string{"", "not-a-digest", "$2a$xx$garbage"} {
		if Verify(digest, "secret") {
			t.Fatalf("malformed digest %q must not verify", digest)
		}
	}
}
