package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"serve", "migrate", "shorten", "list"}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			c, _, err := RootCmd.Find([]string{name})
			if err != nil {
				t.Fatalf("Find(%s) failed: %v", name, err)
			}
			if c.Name() != name {
				t.Errorf("Find(%s) returned %s", name, c.Name())
			}
		})
	}
}

func TestShortenRequiresURLFlag(t *testing.T) {
	flag := ShortenCmd.Flags().Lookup("url")
	if flag == nil {
		t.Fatal("Expected --url flag")
	}
	if _, ok := flag.Annotations["cobra_annotation_bash_completion_one_required_flag"]; !ok {
		t.Error("Expected --url to be required")
	}
}

func TestServeSkipMigrationsFlag(t *testing.T) {
	if ServeCmd.Flags().Lookup("skip-migrations") == nil {
		t.Error("Expected --skip-migrations flag")
	}
}
