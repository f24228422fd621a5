package symtab

import "testing"

func TestIndexGetOrCreate(t *testing.T) {
	idx := NewIndex()

	env, created := idx.GetOrCreate(Name("foo"))
	if !created {
		t.Fatal("expected first GetOrCreate to report created=true")
	}
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}

	again, created := idx.GetOrCreate(Name("foo"))
	if created {
		t.Fatal("expected second GetOrCreate to report created=false")
	}
	if again != env {
		t.Fatal("expected the same envelope pointer on repeat lookup")
	}
}

func TestIndexGlobFastPath(t *testing.T) {
	idx := NewIndex()
	env, _ := idx.GetOrCreate(Name("foo"))
	env.Slot = RegularRecord{}

	got := idx.Glob("foo")
	if len(got) != 1 || got[0] != env {
		t.Fatalf("Glob(%q) = %v, want [env]", "foo", got)
	}

	if got := idx.Glob("bar"); got != nil {
		t.Fatalf("Glob(%q) = %v, want nil", "bar", got)
	}
}

func TestIndexGlobWildcard(t *testing.T) {
	idx := NewIndex()
	for _, name := range []string{"foo_a", "foo_b", "bar"} {
		env, _ := idx.GetOrCreate(Name(name))
		env.Slot = RegularRecord{}
	}
	// an undefined entry should never show up in Glob results
	undef, _ := idx.GetOrCreate(Name("foo_c"))
	undef.Slot = UndefinedRecord{}

	got := idx.Glob("foo_*")
	if len(got) != 2 {
		t.Fatalf("Glob(foo_*) matched %d envelopes, want 2", len(got))
	}
}

func TestNameSplit(t *testing.T) {
	cases := []struct {
		name      Name
		base, tag string
		isDefault bool
	}{
		{"foo", "foo", "", false},
		{"foo@v1", "foo", "v1", false},
		{"foo@@v1", "foo", "v1", true},
	}
	for _, c := range cases {
		base, tag, isDefault := c.name.Split()
		if base != c.base || tag != c.tag || isDefault != c.isDefault {
			t.Errorf("%q.Split() = (%q, %q, %v), want (%q, %q, %v)",
				c.name, base, tag, isDefault, c.base, c.tag, c.isDefault)
		}
	}
}
