package systems

import "testing"

func TestCatRect(t *testing.T) {
	clips, _ := testClips()
	cat := newTestCat(clips, 100, 200)

	rect := CatRect(&cat)
	if rect.Width != 64 || rect.Height != 64 {
		t.Fatalf("CatRect size = %vx%v, want 64x64", rect.Width, rect.Height)
	}
	if rect.Left() != 68 || rect.Top() != 168 {
		t.Errorf("CatRect origin = (%v, %v), want (68, 168)", rect.Left(), rect.Top())
	}

	// 缩放改变后矩形随之改变
	cat.Scale = 2
	if rect := CatRect(&cat); rect.Width != 32 || rect.Height != 32 {
		t.Errorf("CatRect after rescale = %vx%v, want 32x32", rect.Width, rect.Height)
	}
}

func TestBallRect(t *testing.T) {
	_, ballClip := testClips()
	ball := newTestBall(ballClip, 400, 200)

	rect := BallRect(&ball)
	if rect.Width != 24 || rect.Height != 24 {
		t.Fatalf("BallRect size = %vx%v, want 24x24", rect.Width, rect.Height)
	}
	if cx, cy := rect.Center(); cx != 400 || cy != 200 {
		t.Errorf("BallRect center = (%v, %v), want (400, 200)", cx, cy)
	}
}
