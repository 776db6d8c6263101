package handlers

import (
	"strings"
	"testing"
)

func TestParseBrandCSV(t *testing.T) {
	input := "name,website,logo_url\n" +
		"Acme,https://acme.example,https://cdn.example/acme.png\n" +
		"Globex,,\n"

	brands, err := parseBrandCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(brands) != 2 {
		t.Fatalf("expected 2 brands, got %d", len(brands))
	}
	if brands[0].Name != "Acme" || brands[0].Website != "https://acme.example" {
		t.Fatalf("unexpected first brand: %+v", brands[0])
	}
	if brands[0].Products != 0 || brands[0].Status != "Active" {
		t.Fatalf("expected defaults products=0 status=Active, got %+v", brands[0])
	}
}

func TestParseBrandCSVSkipsNamelessRows(t *testing.T) {
	input := "name,website,logo_url\n" +
		",https://nobody.example,\n" +
		"Acme,,\n"

	brands, err := parseBrandCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(brands) != 1 || brands[0].Name != "Acme" {
		t.Fatalf("expected only the named row, got %+v", brands)
	}
}

func TestParseBrandCSVRejectsWrongHeader(t *testing.T) {
	input := "title,site,logo\nAcme,,\n"
	if _, err := parseBrandCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected a header error")
	}
}

func TestParseCategoryCSV(t *testing.T) {
	input := "name,parent,image_url\n" +
		"Shoes,,https://cdn.example/shoes.png\n" +
		"Sneakers,Shoes,\n"

	categories, err := parseCategoryCSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[1].Parent != "Shoes" {
		t.Fatalf("expected parent Shoes, got %q", categories[1].Parent)
	}
	if categories[0].Status != "Published" {
		t.Fatalf("expected default status Published, got %q", categories[0].Status)
	}
}

func TestParseCategoryCSVMalformedRow(t *testing.T) {
	input := "name,parent,image_url\nShoes,extra,field,boom\n"
	if _, err := parseCategoryCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for a row with too many fields")
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Summer Journal 2025", "summer-journal-2025"},
		{"  Hello, World!  ", "hello-world"},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Fatalf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
