package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2},
			want:         38,
		},
		{
			name:         "with tab bar",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2, TabBarHeight: 1},
			want:         37,
		},
		{
			name:         "all components",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 2, TabBarHeight: 1, StatusHeight: 1, BorderHeight: 2},
			want:         34,
		},
		{
			name:         "tiny window keeps one row",
			windowHeight: 3,
			opts:         ContentOpts{HeaderHeight: 2, TabBarHeight: 1, StatusHeight: 1, BorderHeight: 2},
			want:         1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsNarrowMode(t *testing.T) {
	tests := []struct {
		width int
		want  bool
	}{
		{40, true},
		{79, true},
		{80, false},
		{200, false},
	}

	for _, tt := range tests {
		if got := IsNarrowMode(tt.width); got != tt.want {
			t.Errorf("IsNarrowMode(%d) = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestTrackColumns(t *testing.T) {
	if got := TrackColumns(60); got != 2 {
		t.Errorf("TrackColumns(60) = %d, want 2", got)
	}
	if got := TrackColumns(120); got != 3 {
		t.Errorf("TrackColumns(120) = %d, want 3", got)
	}
}
