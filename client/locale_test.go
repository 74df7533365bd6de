package client

import "testing"

func TestLocaleHosts(t *testing.T) {
	want := map[Locale]string{
		US: "api.shopstyle.com",
		UK: "api.shopstyle.co.uk",
		DE: "api.shopstyle.de",
		FR: "api.shopstyle.fr",
		JP: "api.shopstyle.co.jp",
		AU: "api.shopstyle.com.au",
		CA: "api.shopstyle.ca",
	}
	if len(Locales()) != len(want) {
		t.Fatalf("Locales() has %d entries", len(Locales()))
	}
	for _, l := range Locales() {
		if got := l.Host(); got != want[l] {
			t.Fatalf("%s host = %s, want %s", l, got, want[l])
		}
		c, err := New("abc", WithLocale(l), WithoutCache())
		if err != nil {
			t.Fatalf("New(%s): %v", l, err)
		}
		if c.Host() != want[l] {
			t.Fatalf("client host for %s = %s", l, c.Host())
		}
	}
}

func TestLocale_UnknownFallsBackToUS(t *testing.T) {
	for _, l := range []Locale{"", "ES", "us", "NOPE"} {
		if l.Valid() {
			t.Fatalf("%q should not be valid", l)
		}
		if l.Host() != "api.shopstyle.com" {
			t.Fatalf("%q host = %s", l, l.Host())
		}
		c, err := New("abc", WithLocale(l), WithoutCache())
		if err != nil {
			t.Fatalf("unknown locale must not fail construction: %v", err)
		}
		if c.Host() != "api.shopstyle.com" {
			t.Fatalf("client host = %s", c.Host())
		}
	}
}

func TestParseLocale(t *testing.T) {
	l, err := ParseLocale(" uk ")
	if err != nil || l != UK {
		t.Fatalf("ParseLocale(uk) = %q, %v", l, err)
	}
	l, err = ParseLocale("")
	if err != nil || l != US {
		t.Fatalf("ParseLocale(\"\") = %q, %v", l, err)
	}
	if _, err := ParseLocale("ES"); err == nil {
		t.Fatal("expected error for unsupported locale")
	}
}
