package controller

import (
	"context"
	"errors"
	"fmt"
)

// fakeChannels is an in-memory ChannelManager that records every operation
// and can be seeded with pre-existing live state or injected failures.
type fakeChannels struct {
	categories []Channel
	children   map[string][]Channel
	nextID     int

	createdCategories int
	createdChannels   int
	grants            map[string][]string
	messages          []fakeMessage
	deleted           []string
	accessSet         map[string]AccessRules

	failCreateChannel map[string]bool
	failSend          bool
}

type fakeMessage struct {
	channelID string
	content   string
	mentions  []string
}

func newFakeChannels() *fakeChannels {
	return &fakeChannels{
		children:          make(map[string][]Channel),
		grants:            make(map[string][]string),
		accessSet:         make(map[string]AccessRules),
		failCreateChannel: make(map[string]bool),
	}
}

func (f *fakeChannels) id() string {
	f.nextID++
	return fmt.Sprintf("ch-%d", f.nextID)
}

func (f *fakeChannels) Categories(ctx context.Context) ([]Channel, error) {
	return append([]Channel(nil), f.categories...), nil
}

func (f *fakeChannels) Children(ctx context.Context, parentID string) ([]Channel, error) {
	return append([]Channel(nil), f.children[parentID]...), nil
}

func (f *fakeChannels) CreateCategory(ctx context.Context, name string, rules AccessRules) (Channel, error) {
	cat := Channel{ID: f.id(), Name: name}
	f.categories = append(f.categories, cat)
	f.createdCategories++
	if rules.RoleID != "" {
		f.accessSet[cat.ID] = rules
	}
	return cat, nil
}

func (f *fakeChannels) SetCategoryAccess(ctx context.Context, categoryID string, rules AccessRules) error {
	f.accessSet[categoryID] = rules
	return nil
}

func (f *fakeChannels) CreateChannel(ctx context.Context, name, parentID string) (Channel, error) {
	if f.failCreateChannel[name] {
		return Channel{}, errors.New("create rejected")
	}
	ch := Channel{ID: f.id(), Name: name}
	f.children[parentID] = append(f.children[parentID], ch)
	f.createdChannels++
	return ch, nil
}

func (f *fakeChannels) GrantMemberView(ctx context.Context, channelID, userID string) error {
	f.grants[channelID] = append(f.grants[channelID], userID)
	return nil
}

func (f *fakeChannels) SendMessage(ctx context.Context, channelID, content string, mentionUserIDs []string) error {
	if f.failSend {
		return errors.New("send rejected")
	}
	f.messages = append(f.messages, fakeMessage{
		channelID: channelID,
		content:   content,
		mentions:  append([]string(nil), mentionUserIDs...),
	})
	return nil
}

func (f *fakeChannels) RenameChannel(ctx context.Context, channelID, name string) error {
	return nil
}

func (f *fakeChannels) DeleteChannel(ctx context.Context, channelID string) error {
	f.deleted = append(f.deleted, channelID)

	for i, cat := range f.categories {
		if cat.ID == channelID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			break
		}
	}
	for parent, chs := range f.children {
		for i, ch := range chs {
			if ch.ID == channelID {
				f.children[parent] = append(chs[:i], chs[i+1:]...)
				break
			}
		}
	}
	return nil
}
