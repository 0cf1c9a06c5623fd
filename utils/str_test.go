package utils

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestGbkUtf8RoundTrip(t *testing.T) {
	src := []byte("叶绿素测量表")
	gbk, err := Utf8ToGbk(src)
	if err != nil {
		t.Fatal(err)
	}
	if utf8.Valid(gbk) {
		t.Fatal("gbk bytes should not be valid utf8")
	}
	back, err := GbkToUtf8(gbk)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(src, back) {
		t.Fatalf("round trip mismatch: %q -> %q", src, back)
	}
}
