package accessory

import "testing"

func TestServiceKeyCanonicalForm(t *testing.T) {
	t.Run("WithSubtype", func(t *testing.T) {
		key := ServiceKey{Type: "A", Subtype: "left"}
		if key.String() != "Aleft" {
			t.Errorf("expected key Aleft, got %s", key.String())
		}
	})

	t.Run("WithoutSubtype", func(t *testing.T) {
		key := ServiceKey{Type: "A"}
		if key.String() != "A" {
			t.Errorf("expected key A, got %s", key.String())
		}
	})
}

func TestServiceBasics(t *testing.T) {
	svc := NewService("Garden Light", "00000043-0000-1000-8000-0026BB765291", "garden")

	t.Run("Identity", func(t *testing.T) {
		if svc.DisplayName() != "Garden Light" {
			t.Errorf("unexpected display name %s", svc.DisplayName())
		}
		if svc.Subtype() != "garden" {
			t.Errorf("unexpected subtype %s", svc.Subtype())
		}
		want := "00000043-0000-1000-8000-0026BB765291garden"
		if svc.Key().String() != want {
			t.Errorf("expected key %s, got %s", want, svc.Key().String())
		}
	})

	t.Run("Characteristics", func(t *testing.T) {
		on := NewCharacteristic("On", "00000025-0000-1000-8000-0026BB765291", nil)
		svc.AddCharacteristic(on)

		got := svc.GetCharacteristic("00000025-0000-1000-8000-0026BB765291")
		if got != on {
			t.Fatalf("expected to find the added characteristic")
		}
		if svc.GetCharacteristic("no-such-type") != nil {
			t.Error("expected nil for unknown characteristic type")
		}
	})

	t.Run("BulkSet", func(t *testing.T) {
		a := NewCharacteristic("A", "A", nil)
		b := NewCharacteristic("B", "B", nil)
		svc.SetCharacteristics([]*Characteristic{a, b})

		got := svc.Characteristics()
		if len(got) != 2 || got[0] != a || got[1] != b {
			t.Errorf("bulk set did not replace the characteristic list")
		}
	})
}

func TestLinkedServicesOrder(t *testing.T) {
	svc := NewService("TV", "tv-type", "")
	first := NewService("Input 1", "input-type", "1")
	second := NewService("Input 2", "input-type", "2")

	svc.AddLinkedService(first)
	svc.AddLinkedService(second)

	linked := svc.LinkedServices()
	if len(linked) != 2 {
		t.Fatalf("expected 2 linked services, got %d", len(linked))
	}
	if linked[0] != first || linked[1] != second {
		t.Error("linked services not in insertion order")
	}
}

func TestCharacteristicValueAndListeners(t *testing.T) {
	c := NewCharacteristic("Brightness", "00000008-0000-1000-8000-0026BB765291", map[string]any{"minValue": 0})

	var gotOld, gotNew any
	c.OnChange(func(old, new any) {
		gotOld, gotNew = old, new
	})

	c.SetValue(42)
	if c.Value() != 42 {
		t.Errorf("expected value 42, got %v", c.Value())
	}
	if gotOld != nil || gotNew != 42 {
		t.Errorf("listener saw old=%v new=%v", gotOld, gotNew)
	}

	c.releaseSubscriptions()
	c.SetValue(7)
	if gotNew != 42 {
		t.Error("listener fired after release")
	}
}

func TestAccessoryInformationSeed(t *testing.T) {
	svc := newAccessoryInformation("Bedside Lamp")

	if svc.Type() != TypeAccessoryInformation {
		t.Fatalf("unexpected service type %s", svc.Type())
	}
	if len(svc.Characteristics()) != 4 {
		t.Fatalf("expected 4 metadata characteristics, got %d", len(svc.Characteristics()))
	}

	name := svc.GetCharacteristic(CharTypeName)
	if name == nil || name.Value() != "Bedside Lamp" {
		t.Error("name characteristic not seeded with the display name")
	}
	manufacturer := svc.GetCharacteristic(CharTypeManufacturer)
	if manufacturer == nil || manufacturer.Value() != DefaultManufacturer {
		t.Error("manufacturer characteristic not seeded with its default")
	}
}
