package layout

import "testing"

func TestKeyCount(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int
	}{
		{"key", KeyOf(1), 1},
		{"spacer", Space(1, 1), 0},
		{"row", NewRow(KeyOf(1), Space(1, 1), KeyOf(2)), 2},
		{"iso enter", ISOEnter(NewRow(Keys(16, 27)...), NewRow(Keys(30, 40)...), 28, 1.5, 1.25), 24},
		{"groups", NewHGroup(NewVGroup(NewRow(Keys(2, 4)...)), Space(1, 1), NewRow(Text("WIN"))), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyCount(tt.node); got != tt.want {
				t.Errorf("KeyCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{KeyOf(14).Wide(2), "Key(14, width=2)"},
		{Text("WIN").Wide(1.25), `Key("WIN", width=1.25)`},
		{KeyOf(78).Tall(2), "Key(78, height=2)"},
		{Space(0.5, 1), "Spacer(width=0.5)"},
		{Space(15, 0.5), "Spacer(width=15, height=0.5)"},
		{NewRow(KeyOf(1), Space(1, 1)), "Row(Key(1), Spacer())"},
		{ISOEnter(NewRow(KeyOf(1)), NewRow(KeyOf(2)), 28, 1.5, 1.25), "StackedPair(Row(Key(1)), Row(Key(2)), 28, 1.5, 1.25, enter)"},
		{NewVGroup(NewRow(KeyOf(1))), "VGroup(Row(Key(1)))"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChildrenAndDescribe(t *testing.T) {
	p := TallPair(NewRow(KeyOf(71)), NewRow(KeyOf(75)), 78)
	children := Children(p)
	if len(children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(children))
	}
	if got := children[2].String(); got != "Key(78, height=2)" {
		t.Errorf("trailing key = %q", got)
	}
	if got := Describe(p); got != "StackedPair tall 1+1" {
		t.Errorf("Describe() = %q", got)
	}
	if got := Describe(NewRow(KeyOf(1), KeyOf(2))); got != "Row (2)" {
		t.Errorf("Describe() = %q", got)
	}
	if Children(KeyOf(1)) != nil {
		t.Error("a key has no children")
	}
}
