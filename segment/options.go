package segment

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithRules replaces the default rules of a segmenter.
func WithRules(rules ...Rule) Option {
	return func(s *Segmenter) {
		s.rules = rules
	}
}

// KeepIntersecting tells a segmenter whether to keep entities which
// intersect a preceding entity. The default is to drop them.
func KeepIntersecting(keep bool) Option {
	return func(s *Segmenter) {
		s.keepIntersecting = keep
	}
}
