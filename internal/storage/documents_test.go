package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"rodaBack/internal/models"
)

type fakePresigner struct {
	calls   int
	failKey string
}

func (p *fakePresigner) presignGet(bucket, key string, ttl time.Duration) (string, error) {
	p.calls++
	if key == p.failKey {
		return "", errors.New("presign failed")
	}
	return fmt.Sprintf("https://%s/%s?ttl=%d", bucket, key, int(ttl.Seconds())), nil
}

func testGateway(signer presigner) *Gateway {
	return &Gateway{
		cfg: Config{
			Endpoint:        "https://object.pscloud.io",
			DocumentsBucket: "docs",
			AvatarsBucket:   "avatars",
		},
		signer: signer,
	}
}

func strPtr(s string) *string { return &s }

func TestSignURLsEmptyInput(t *testing.T) {
	signer := &fakePresigner{}
	g := testGateway(signer)

	signed := g.SignURLs([]string{}, DocumentTTL)
	if len(signed) != 0 {
		t.Fatalf("expected empty result, got %v", signed)
	}
	if signer.calls != 0 {
		t.Fatalf("expected no presign calls, got %d", signer.calls)
	}
}

func TestSignURLsPreservesOrder(t *testing.T) {
	g := testGateway(&fakePresigner{})

	keys := []string{"a.jpg", "b.jpg", "c.jpg"}
	signed := g.SignURLs(keys, DocumentTTL)
	if len(signed) != len(keys) {
		t.Fatalf("expected %d results, got %d", len(keys), len(signed))
	}
	for i, s := range signed {
		if s.Key != keys[i] {
			t.Fatalf("result %d is for key %s, wanted %s", i, s.Key, keys[i])
		}
		if s.Err != nil {
			t.Fatalf("unexpected error for %s: %v", s.Key, s.Err)
		}
	}
}

func TestSignURLsPartialFailure(t *testing.T) {
	g := testGateway(&fakePresigner{failKey: "b.jpg"})

	signed := g.SignURLs([]string{"a.jpg", "b.jpg", "c.jpg"}, DocumentTTL)
	if signed[0].Err != nil || signed[2].Err != nil {
		t.Fatal("successful keys must survive a failing one")
	}
	if signed[1].Err == nil {
		t.Fatal("expected an error for the failing key")
	}
	if signed[0].URL == "" || signed[2].URL == "" {
		t.Fatal("expected URLs for the successful keys")
	}
}

func TestDocumentSlots(t *testing.T) {
	driver := models.Driver{
		IDPhotoURLFront:      "d1/id-front.jpg",
		IDPhotoURLBack:       "d1/id-back.jpg",
		LicensePhotoURLFront: "d1/license-front.jpg",
		LicensePhotoURLBack:  "d1/license-back.jpg",
	}

	t.Run("without vehicle", func(t *testing.T) {
		slots := DocumentSlots(driver)
		want := []string{SlotIDFront, SlotIDBack, SlotLicenseFront, SlotLicenseBack}
		if len(slots) != len(want) {
			t.Fatalf("expected %d slots, got %d", len(want), len(slots))
		}
		for i, slot := range slots {
			if slot.Slot != want[i] {
				t.Fatalf("slot %d is %s, wanted %s", i, slot.Slot, want[i])
			}
		}
	})

	t.Run("with vehicle and contract", func(t *testing.T) {
		d := driver
		d.Vehicle = &models.Vehicle{
			PropertyCardPhotoURLFront: "d1/card-front.jpg",
			PropertyCardPhotoURLBack:  "d1/card-back.jpg",
		}
		d.ContractURL = strPtr("d1/contract.pdf")

		slots := DocumentSlots(d)
		if len(slots) != 7 {
			t.Fatalf("expected 7 slots, got %d", len(slots))
		}
		if slots[6].Slot != SlotContract {
			t.Fatalf("expected contract last, got %s", slots[6].Slot)
		}
	})

	t.Run("empty keys filtered", func(t *testing.T) {
		d := driver
		d.IDPhotoURLBack = ""
		d.NotaryPowerURL = strPtr("")

		slots := DocumentSlots(d)
		for _, slot := range slots {
			if slot.Key == "" {
				t.Fatalf("slot %s kept an empty key", slot.Slot)
			}
			if slot.Slot == SlotIDBack || slot.Slot == SlotNotaryPower {
				t.Fatalf("slot %s should have been filtered", slot.Slot)
			}
		}
	})
}

func TestDriverDocumentsSkipsFailedKeys(t *testing.T) {
	g := testGateway(&fakePresigner{failKey: "d1/id-back.jpg"})

	driver := models.Driver{
		IDPhotoURLFront:      "d1/id-front.jpg",
		IDPhotoURLBack:       "d1/id-back.jpg",
		LicensePhotoURLFront: "d1/license-front.jpg",
		LicensePhotoURLBack:  "d1/license-back.jpg",
	}

	urls := g.DriverDocuments(driver)
	if len(urls) != 3 {
		t.Fatalf("expected 3 signed documents, got %d", len(urls))
	}
	if _, ok := urls[SlotIDBack]; ok {
		t.Fatal("failed key must not appear in the result")
	}
	if urls[SlotIDFront] == "" {
		t.Fatal("expected a URL for the id front slot")
	}
}

func TestAvatarURL(t *testing.T) {
	t.Run("signed", func(t *testing.T) {
		g := testGateway(&fakePresigner{})
		url, err := g.AvatarURL("d1/avatar.jpg")
		if err != nil {
			t.Fatalf("AvatarURL: %v", err)
		}
		if url != "https://avatars/d1/avatar.jpg?ttl=86400" {
			t.Fatalf("unexpected signed avatar URL %s", url)
		}
	})

	t.Run("public bucket", func(t *testing.T) {
		g := testGateway(&fakePresigner{})
		g.cfg.AvatarsPublic = true
		url, err := g.AvatarURL("d1/avatar.jpg")
		if err != nil {
			t.Fatalf("AvatarURL: %v", err)
		}
		if url != "https://avatars.object.pscloud.io/d1/avatar.jpg" {
			t.Fatalf("unexpected public avatar URL %s", url)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		signer := &fakePresigner{}
		g := testGateway(signer)
		url, err := g.AvatarURL("")
		if err != nil || url != "" {
			t.Fatalf("expected empty URL without error, got %q, %v", url, err)
		}
		if signer.calls != 0 {
			t.Fatal("empty avatar key must not hit storage")
		}
	})
}
