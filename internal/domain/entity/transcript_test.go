package entity

import "testing"

func TestNewTranscript_StartsWithSystemMessage(t *testing.T) {
	tr := NewTranscript("contract")

	if tr.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", tr.Len())
	}

	msgs := tr.Messages()
	if msgs[0].Role != RoleSystem {
		t.Errorf("expected system role, got %s", msgs[0].Role)
	}
	if msgs[0].Content != "contract" {
		t.Errorf("expected system prompt content, got %q", msgs[0].Content)
	}
}

func TestTranscript_AppendRoundTrip(t *testing.T) {
	tr := NewTranscript("sys")

	tr.Append(RoleUser, "hello")

	last, ok := tr.Last()
	if !ok {
		t.Fatal("expected a last message")
	}
	if last.Role != RoleUser || last.Content != "hello" {
		t.Errorf("round trip mismatch: got %s %q", last.Role, last.Content)
	}
}

func TestTranscript_LengthIncreasesByOnePerAppend(t *testing.T) {
	tr := NewTranscript("sys")

	for i := 1; i <= 5; i++ {
		before := tr.Len()
		tr.Append(RoleAssistant, "reply")
		if tr.Len() != before+1 {
			t.Fatalf("append %d: length went from %d to %d", i, before, tr.Len())
		}
	}
}

func TestTranscript_MessagesReturnsCopy(t *testing.T) {
	tr := NewTranscript("sys")
	tr.Append(RoleUser, "original")

	msgs := tr.Messages()
	msgs[1].Content = "mutated"

	fresh := tr.Messages()
	if fresh[1].Content != "original" {
		t.Errorf("transcript mutated through Messages(): %q", fresh[1].Content)
	}
}

func TestTranscript_OrderPreserved(t *testing.T) {
	tr := NewTranscript("sys")
	tr.Append(RoleUser, "one")
	tr.Append(RoleAssistant, "two")
	tr.Append(RoleUser, "three")

	msgs := tr.Messages()
	want := []string{"sys", "one", "two", "three"}
	for i, content := range want {
		if msgs[i].Content != content {
			t.Errorf("position %d: expected %q, got %q", i, content, msgs[i].Content)
		}
	}
}
