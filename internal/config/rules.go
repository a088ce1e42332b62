package config

// DefaultRules transliterates dwm's config.h rules[] sample entries:
// float the Gimp class and pin the Firefox class to tag 9, as a
// concrete illustration of the Rule mechanism.
func DefaultRules() []Rule {
	return []Rule{
		{Class: "Gimp", IsFloating: true, Monitor: -1},
		{Class: "Firefox", Tags: 1 << 8, Monitor: -1},
	}
}
