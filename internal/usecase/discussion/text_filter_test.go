package discussion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/campus-lostfound/internal/usecase/discussion"
)

func TestTextFilter_Clean(t *testing.T) {
	f := discussion.NewTextFilter([]string{"stupid", " "})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "  hello  ", want: "hello"},
		{name: "tags", in: "<i>see</i> <a href=\"x\">here</a>", want: "see here"},
		{name: "entities", in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "masked", in: "that was stupid", want: "that was ******"},
		{name: "script", in: "<script>alert(1)</script>", want: ""},
		{name: "encoded script", in: "&lt;script&gt;alert(1)&lt;/script&gt;hi", want: "hi"},
		{name: "double encoded tag", in: "&amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt;", want: "bold"},
		{name: "less than", in: "1 &lt; 2", want: "1 < 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Clean(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<script")
		})
	}
}
