package util

// PrefixConfig namespaces a flag name, e.g. PrefixConfig("infer", "strategy")
// is "infer.strategy". An empty prefix leaves the option untouched.
func PrefixConfig(prefix string, option string) string {
	if prefix == "" {
		return option
	}
	return prefix + "." + option
}
