package htmlscan

import (
	"reflect"
	"strings"
	"testing"

	"didact/internal/domain"
)

func TestScanner_FindHeadingsWithTimeAnnotation(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []domain.HeadingAnnotation
	}{
		{
			name: "no annotations",
			html: "<h1>Title</h1><p>text</p>",
			want: nil,
		},
		{
			name: "annotated headings in order",
			html: `<h1 id="t">Title</h1>
<h2 id="setup" time="5">Setup</h2>
<p>body</p>
<h3 time=2.5>Run <code>mvn</code>
  now</h3>`,
			want: []domain.HeadingAnnotation{
				{Label: "Setup", RawAnnotation: "5"},
				{Label: "Run mvn now", RawAnnotation: "2.5"},
			},
		},
		{
			name: "non numeric value kept raw",
			html: `<h4 time="soon">Later</h4>`,
			want: []domain.HeadingAnnotation{{Label: "Later", RawAnnotation: "soon"}},
		},
		{
			name: "time on other elements ignored",
			html: `<p time="3">para</p><div time="1"><h2>inner</h2></div>`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewScanner().FindHeadingsWithTimeAnnotation(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScanner_FindLinks(t *testing.T) {
	doc := `<p><a href="didact://?commandId=a">A</a> <a href="https://example.com">web</a>
<a href="didact://?commandId=b&amp;text=x">B</a></p>`

	got := NewScanner().FindLinks(doc, func(href string) bool {
		return strings.HasPrefix(href, "didact:")
	})
	want := []string{"didact://?commandId=a", "didact://?commandId=b&text=x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindLinks = %v, want %v", got, want)
	}
}
