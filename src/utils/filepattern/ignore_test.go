package filepattern

import "testing"

func TestIsFileIgnored_AbsolutePatterns(t *testing.T) {
	abs := []string{"/vendor", "/build/out"}
	if !IsFileIgnored("/ws", "/ws/vendor/gem.rb", abs, nil) {
		t.Fatalf("/vendor should ignore files under it")
	}
	if !IsFileIgnored("/ws", "/ws/vendor", abs, nil) {
		t.Fatalf("/vendor should ignore the directory itself")
	}
	if !IsFileIgnored("/ws", "/ws/build/out/a.rb", abs, nil) {
		t.Fatalf("nested absolute pattern should match")
	}
	if IsFileIgnored("/ws", "/ws/vendored/x.rb", abs, nil) {
		t.Fatalf("partial segment must not match")
	}
	if IsFileIgnored("/ws", "/ws/src/vendor/x.rb", abs, nil) {
		t.Fatalf("absolute pattern anchors at the root only")
	}
}

func TestIsFileIgnored_RelativePatterns(t *testing.T) {
	rel := []string{"node_modules", "tmp/cache"}
	if !IsFileIgnored("/ws", "/ws/node_modules/x.js", nil, rel) {
		t.Fatalf("top-level relative match")
	}
	if !IsFileIgnored("/ws", "/ws/a/b/node_modules/x.js", nil, rel) {
		t.Fatalf("relative pattern matches at any depth")
	}
	if !IsFileIgnored("/ws", "/ws/a/tmp/cache/y", nil, rel) {
		t.Fatalf("multi-segment relative pattern")
	}
	if IsFileIgnored("/ws", "/ws/a/not_node_modules/x.js", nil, rel) {
		t.Fatalf("segment boundary required before the match")
	}
	if IsFileIgnored("/ws", "/ws/a/node_modules_old/x.js", nil, rel) {
		t.Fatalf("segment boundary required after the match")
	}
}

func TestIsFileIgnored_NoPatterns(t *testing.T) {
	if IsFileIgnored("/ws", "/ws/anything.rb", nil, nil) {
		t.Fatalf("no patterns should ignore nothing")
	}
}
