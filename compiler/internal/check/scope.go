package check

type varInfo struct {
	kind    Kind
	isConst bool
}

type frame map[string]*varInfo

// scopes is the block stack. The root frame is created with it and is never
// popped.
type scopes struct {
	frames []frame
}

func newScopes() *scopes { return &scopes{frames: []frame{{}}} }

func (s *scopes) depth() int { return len(s.frames) }

func (s *scopes) push() { s.frames = push(s.frames, frame{}) }

// pop discards the innermost frame and reports false when only the root is
// left.
func (s *scopes) pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = pop(s.frames)
	return true
}

// lookup searches from the innermost frame outwards.
func (s *scopes) lookup(name string) (*varInfo, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// define binds name in the innermost frame. It reports false if the frame
// already held the name; the new binding replaces it either way.
func (s *scopes) define(name string, v *varInfo) bool {
	cur := *top(s.frames)
	_, exists := cur[name]
	cur[name] = v
	return !exists
}
