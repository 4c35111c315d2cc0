package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte("version: \"1.0\"\n")},
		"assets/images/ball.png":       {Data: []byte{0x89, 'P', 'N', 'G'}},
		"assets/images/cat_idle.png":   {Data: []byte{0x89, 'P', 'N', 'G'}},
	}
}

// TestNotInitialized 未初始化时所有读取都失败
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if IsInitialized() {
		t.Fatal("Expected IsInitialized() to return false after Init(nil)")
	}
	if _, err := Open("assets/images/ball.png"); err != errNotInitialized {
		t.Errorf("Open: got %v, want errNotInitialized", err)
	}
	if _, err := ReadFile("assets/images/ball.png"); err != errNotInitialized {
		t.Errorf("ReadFile: got %v, want errNotInitialized", err)
	}
	if _, err := Glob("assets/images/*.png"); err != errNotInitialized {
		t.Errorf("Glob: got %v, want errNotInitialized", err)
	}
	if Exists("assets/images/ball.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	data, err := ReadFile("./assets/config/resources.yaml")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "version: \"1.0\"\n" {
		t.Errorf("ReadFile: unexpected content %q", data)
	}

	if _, err := ReadFile("assets/missing.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestUnknownPrefix(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	for _, p := range []string{"data/levels/level1.yaml", "images/ball.png", "/assets/images/ball.png"} {
		if _, err := ReadFile(p); err == nil {
			t.Errorf("ReadFile(%q): expected prefix error", p)
		}
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("assets/images/ball.png") {
		t.Error("Expected ball.png to exist")
	}
	if Exists("assets/images/dog.png") {
		t.Error("Expected dog.png not to exist")
	}

	matches, err := Glob("assets/images/*.png")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Glob: got %d matches, want 2: %v", len(matches), matches)
	}
}
