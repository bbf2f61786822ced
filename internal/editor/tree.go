package editor

import (
	"github.com/google/uuid"

	"github.com/hntran/Corella/internal/model"
)

// Draft is the authoring tree for one course. Nodes carry a synthetic Key so
// identity survives the create→update transition; the server ID is 0 until
// the node has been persisted. OrderIndex is assigned at creation time from
// the node's position and is not renumbered when siblings are removed.
type Draft struct {
	// CourseID is the server id in edit mode, or the id assigned after the
	// first successful create-mode save.
	CourseID uint
	// CourseIDInput is the operator-typed id in create mode; validated as a
	// positive integer before any network call.
	CourseIDInput string
	CreateMode    bool

	Title       string
	Description string
	AuthorID    *uint
	Status      model.CourseStatus
	Price       float64
	Modules     []ModuleNode
}

type ModuleNode struct {
	Key        string
	ID         uint
	Title      string
	OrderIndex int
	Expanded   bool
	Lessons    []LessonNode
}

type LessonNode struct {
	Key        string
	ID         uint
	Title      string
	Content    string
	LessonType model.LessonType
	OrderIndex int
	Expanded   bool
	Media      []MediaNode
}

type MediaNode struct {
	Key        string
	ID         uint
	MediaURL   string
	MediaType  model.MediaType
	OrderIndex int
}

func newKey() string { return uuid.NewString() }

func (d Draft) clone() Draft {
	out := d
	out.Modules = make([]ModuleNode, len(d.Modules))
	for i, m := range d.Modules {
		out.Modules[i] = m.clone()
	}
	if d.AuthorID != nil {
		id := *d.AuthorID
		out.AuthorID = &id
	}
	return out
}

func (m ModuleNode) clone() ModuleNode {
	out := m
	out.Lessons = make([]LessonNode, len(m.Lessons))
	for i, l := range m.Lessons {
		out.Lessons[i] = l.clone()
	}
	return out
}

func (l LessonNode) clone() LessonNode {
	out := l
	out.Media = make([]MediaNode, len(l.Media))
	copy(out.Media, l.Media)
	return out
}

func moduleNodeFromModel(m model.Module) ModuleNode {
	node := ModuleNode{
		Key:        newKey(),
		ID:         m.ID,
		Title:      m.Title,
		OrderIndex: m.OrderIndex,
		Lessons:    make([]LessonNode, 0, len(m.Lessons)),
	}
	for _, l := range m.Lessons {
		node.Lessons = append(node.Lessons, lessonNodeFromModel(l))
	}
	return node
}

func lessonNodeFromModel(l model.Lesson) LessonNode {
	node := LessonNode{
		Key:        newKey(),
		ID:         l.ID,
		Title:      l.Title,
		Content:    l.Content,
		LessonType: l.LessonType,
		OrderIndex: l.OrderIndex,
		Media:      make([]MediaNode, 0, len(l.Media)),
	}
	for _, m := range l.Media {
		node.Media = append(node.Media, MediaNode{
			Key:        newKey(),
			ID:         m.ID,
			MediaURL:   m.MediaURL,
			MediaType:  m.MediaType,
			OrderIndex: m.OrderIndex,
		})
	}
	return node
}
