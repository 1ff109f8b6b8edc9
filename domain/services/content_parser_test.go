package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentParser_Mentions(t *testing.T) {
	parser := NewContentParser()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no markers", "hello world", nil},
		{"single mention", "hello @alice world", []string{"alice"}},
		{"mention at end of text", "ping @bob", []string{"bob"}},
		{"marker followed by space keeps empty token", "@ foo", []string{""}},
		{"marker at end of text keeps empty token", "trailing @", []string{""}},
		{"adjacent markers", "@a@b", []string{"a", "b"}},
		{"double marker", "@@", []string{"", ""}},
		{"duplicates preserved in order", "@alice @bob @alice", []string{"alice", "bob", "alice"}},
		{"hashtag terminates mention", "@alice#foo", []string{"alice"}},
		{"case preserved", "@Alice", []string{"Alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Mentions(tt.text))
		})
	}
}

func TestContentParser_Hashtags(t *testing.T) {
	parser := NewContentParser()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no markers", "hello world", nil},
		{"single tag", "hello #news world", []string{"news"}},
		{"duplicate tags kept", "hello @alice #foo #foo world", []string{"foo", "foo"}},
		{"mention terminates tag", "#foo@alice", []string{"foo"}},
		{"empty tag", "# leading", []string{""}},
		{"punctuation stays in token", "#c++ rocks", []string{"c++"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Hashtags(tt.text))
		})
	}
}

func TestContentParser_SpecExample(t *testing.T) {
	parser := NewContentParser()
	text := "hello @alice #foo #foo world"

	assert.Equal(t, []string{"alice"}, parser.Mentions(text))
	assert.Equal(t, []string{"foo", "foo"}, parser.Hashtags(text))
}
