package catalogue

import (
	"fmt"
	"slices"
	"strings"
)

// idSeparator joins category and topic names in a TopicID.
const idSeparator = "|"

// TopicID is the stable identifier of a record: its category and topic names.
type TopicID string

// NewTopicID builds the composite identifier for a category/topic pair.
func NewTopicID(category, topic string) TopicID {
	return TopicID(category + idSeparator + topic)
}

// ParseTopicID splits a composite identifier back into its parts.
func ParseTopicID(s string) (TopicID, error) {
	category, topic, ok := strings.Cut(s, idSeparator)
	if !ok || category == "" || topic == "" {
		return "", fmt.Errorf("invalid topic id %q: want \"category%stopic\"", s, idSeparator)
	}
	return NewTopicID(category, topic), nil
}

// Category returns the category half of the identifier.
func (id TopicID) Category() string {
	category, _, _ := strings.Cut(string(id), idSeparator)
	return category
}

// Topic returns the topic half of the identifier.
func (id TopicID) Topic() string {
	_, topic, _ := strings.Cut(string(id), idSeparator)
	return topic
}

func (id TopicID) String() string {
	return string(id)
}

// TopicRecord is one unit of course content. Records are immutable once the
// catalogue is built.
type TopicRecord struct {
	Category      string
	Topic         string
	Definition    string
	Example       string
	Question      string
	Options       []string
	CorrectAnswer string
	HasVisualDemo bool
}

// ID returns the record's composite identifier.
func (r TopicRecord) ID() TopicID {
	return NewTopicID(r.Category, r.Topic)
}

// Clone returns a copy that shares no slices with r.
func (r TopicRecord) Clone() TopicRecord {
	r.Options = slices.Clone(r.Options)
	return r
}

// Quizzable reports whether the record carries a question.
func (r TopicRecord) Quizzable() bool {
	return r.Question != ""
}

// Category groups topics under a display name, in declaration order.
type Category struct {
	Name   string
	Icon   string
	Topics []TopicRecord
}

func (c Category) clone() Category {
	topics := make([]TopicRecord, len(c.Topics))
	for i, rec := range c.Topics {
		topics[i] = rec.Clone()
	}
	c.Topics = topics
	return c
}

// Label returns the icon-prefixed name shown in menus.
func (c Category) Label() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}

// Slug returns the URL/CLI-friendly form of the category name.
func (c Category) Slug() string {
	return Slug(c.Name)
}
