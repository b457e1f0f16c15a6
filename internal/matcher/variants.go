package matcher

// DefaultVariants is the built-in spelling-variant table for brand names
// commonly discussed on Vietnamese social media. It can be overridden or
// extended through the matcher.variants config section.
func DefaultVariants() map[string][]string {
	return map[string][]string{
		"be app":  {"be", "beapp", "bee app", "beeapp"},
		"grab":    {"grab", "grabcar", "grab car"},
		"gojek":   {"gojek", "go-jek", "go jek"},
		"shopee":  {"shopee", "shoppee", "shop ee"},
		"lazada":  {"lazada", "laz", "lazada app"},
		"tiki":    {"tiki", "tiki app"},
		"vinfast": {"vinfast", "vin fast", "vf"},
		"iphone":  {"iphone", "ip", "điện thoại iphone"},
		"samsung": {"samsung", "ss", "sam sung"},
	}
}
