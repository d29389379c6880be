package site

import (
	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/watch"
)

// contentChangedMsg reports that the watched content file changed on disk.
type contentChangedMsg struct {
	event watch.ChangeEvent
}

// contentLoadedMsg carries a freshly parsed content document.
type contentLoadedMsg struct {
	content *content.Content
	err     error
}
