package affiliation

import "testing"

func TestResolveStreetAddress(t *testing.T) {
	text := "Institute of Botany, College of Life Sciences, Zhejiang University, 866 Yuhangtang Road, 310058 Hangzhou, China."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	want := Record{
		College:    "Institute of Botany, College of Life Sciences",
		University: "Zhejiang University",
		Address:    "866 Yuhangtang Road",
		PostalCode: "310058",
		City:       "Hangzhou",
		Country:    "China",
	}
	if *rec != want {
		t.Errorf("Resolve(%q) = %+v, want %+v", text, *rec, want)
	}
}

func TestResolveStreetEmbeddedNumber(t *testing.T) {
	text := "Cardiology Research Institute, Tomsk NRMC, 111-А, Kievskaya str., Tomsk 634012, Russian Federation; kitti-lit@yandex.ru."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	want := Record{
		College:    "Cardiology Research Institute",
		University: "Tomsk NRMC",
		Address:    "111-А, Kievskaya str.",
		City:       "Tomsk",
		PostalCode: "634012",
		Country:    "Russian Federation",
	}
	if *rec != want {
		t.Errorf("Resolve(%q) = %+v, want %+v", text, *rec, want)
	}
}

func TestResolveCityCommaPostcode(t *testing.T) {
	text := "Department of Chemistry, Ohio State University, Columbus, Ohio 43210, USA."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	want := Record{
		College:    "Department of Chemistry",
		University: "Ohio State University",
		City:       "Columbus",
		Province:   "Ohio",
		PostalCode: "43210",
		Country:    "USA",
	}
	if *rec != want {
		t.Errorf("Resolve(%q) = %+v, want %+v", text, *rec, want)
	}
}

func TestResolvePostcodeBeforeCity(t *testing.T) {
	text := "Department of Pharmacy, University of Bonn, 53113 Bonn, Germany."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	want := Record{
		College:    "Department of Pharmacy",
		University: "University of Bonn",
		PostalCode: "53113",
		City:       "Bonn",
		Country:    "Germany",
	}
	if *rec != want {
		t.Errorf("Resolve(%q) = %+v, want %+v", text, *rec, want)
	}
	if rec.Address != "" || rec.Province != "" {
		t.Errorf("Address/Province should be absent, got %q/%q", rec.Address, rec.Province)
	}
}

func TestResolveCityBeforePostcode(t *testing.T) {
	text := "Department of Pharmacy, University of Bonn, Bonn 53113, Germany."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	if rec.City != "Bonn" || rec.PostalCode != "53113" || rec.Country != "Germany" {
		t.Errorf("Resolve(%q) = %+v", text, *rec)
	}
}

func TestResolveCityProvince(t *testing.T) {
	text := "Pharmaceutical Research Department, Allen and Hanburys Research Ltd., Ware, Herts, U.K."
	rec, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	if rec.Province != "Herts" {
		t.Errorf("Province = %q, want %q", rec.Province, "Herts")
	}
	if rec.PostalCode != "" {
		t.Errorf("PostalCode = %q, want absent", rec.PostalCode)
	}
	if rec.College != "Pharmaceutical Research Department" {
		t.Errorf("College = %q", rec.College)
	}
	if rec.University != "Allen and Hanburys Research Ltd." {
		t.Errorf("University = %q", rec.University)
	}
	if rec.City != "Ware" {
		t.Errorf("City = %q, want %q", rec.City, "Ware")
	}
}

func TestResolveNoMatch(t *testing.T) {
	tests := []string{
		"",
		"Department of Magic.",
		"A single clause with no commas at all",
		"Only, two clauses.",
	}
	for _, text := range tests {
		if rec, ok := Resolve(text); ok {
			t.Errorf("Resolve(%q) matched unexpectedly: %+v", text, *rec)
		}
	}
}

func TestResolveTrimsInput(t *testing.T) {
	text := "  Department of Pharmacy, University of Bonn, 53113 Bonn, Germany.\n"
	if _, ok := Resolve(text); !ok {
		t.Errorf("Resolve did not trim surrounding whitespace")
	}
}

// Re-running the cascade on the same input must always select the same
// grammar: the list is fixed and grammars hold no state.
func TestResolveFirstMatchStable(t *testing.T) {
	text := "Department of Pharmacy, University of Bonn, 53113 Bonn, Germany."
	first, ok := Resolve(text)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", text)
	}
	second, ok := Resolve(text)
	if !ok {
		t.Fatalf("second Resolve(%q) did not match", text)
	}
	if *first != *second {
		t.Errorf("Resolve not stable: %+v then %+v", *first, *second)
	}
}
