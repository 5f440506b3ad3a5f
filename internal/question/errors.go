package question

import "fmt"

// InsufficientPoolError reports that a topic's active question pool is
// too small for an assembly (diagnostic batch or mock exam). Assemblies
// are all-or-nothing: this error means nothing was created.
type InsufficientPoolError struct {
	TopicID string
	Need    int
	Have    int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("topic %s: need %d eligible questions, have %d", e.TopicID, e.Need, e.Have)
}
