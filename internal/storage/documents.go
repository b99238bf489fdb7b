package storage

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"rodaBack/internal/models"
)

// Signed-URL lifetimes. Documents are opened on demand from the driver page,
// avatars are rendered on every listing, so they get a longer window.
const (
	DocumentTTL = time.Hour
	AvatarTTL   = 24 * time.Hour
)

// Document slot names. The driver page maps each slot to a labelled link, so
// URLs travel keyed by slot instead of by position in a flat array.
const (
	SlotIDFront           = "id_front"
	SlotIDBack            = "id_back"
	SlotLicenseFront      = "license_front"
	SlotLicenseBack       = "license_back"
	SlotPropertyCardFront = "property_card_front"
	SlotPropertyCardBack  = "property_card_back"
	SlotContract          = "contract"
	SlotNotaryPower       = "notary_power"
)

// Config holds the S3-compatible storage settings.
type Config struct {
	Region          string
	Endpoint        string
	AccessKey       string
	SecretKey       string
	DocumentsBucket string
	AvatarsBucket   string
	AvatarsPublic   bool
}

type presigner interface {
	presignGet(bucket, key string, ttl time.Duration) (string, error)
}

type s3Presigner struct {
	client *s3.S3
}

func (p *s3Presigner) presignGet(bucket, key string, ttl time.Duration) (string, error) {
	req, _ := p.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return req.Presign(ttl)
}

// Gateway mints time-limited access URLs for stored driver documents.
type Gateway struct {
	cfg    Config
	signer presigner
}

func NewGateway(cfg Config) *Gateway {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(cfg.Region),
		Endpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKey, cfg.SecretKey, "",
		),
	}))
	return &Gateway{cfg: cfg, signer: &s3Presigner{client: s3.New(sess)}}
}

// SignedURL pairs a storage key with its signed URL or the signing error.
type SignedURL struct {
	Key string
	URL string
	Err error
}

// SignURLs signs every key in order. A key that fails to sign keeps its slot
// in the result so callers can still use the ones that succeeded. Callers
// filter out empty keys beforehand; an empty input performs no call at all.
func (g *Gateway) SignURLs(keys []string, ttl time.Duration) []SignedURL {
	if len(keys) == 0 {
		return []SignedURL{}
	}

	signed := make([]SignedURL, 0, len(keys))
	for _, key := range keys {
		url, err := g.signer.presignGet(g.cfg.DocumentsBucket, key, ttl)
		signed = append(signed, SignedURL{Key: key, URL: url, Err: err})
	}
	return signed
}

// DocumentKey names the slot a storage key belongs to.
type DocumentKey struct {
	Slot string
	Key  string
}

// DocumentSlots collects the driver's document keys in their display order,
// dropping slots that were never uploaded.
func DocumentSlots(d models.Driver) []DocumentKey {
	candidates := []DocumentKey{
		{SlotIDFront, d.IDPhotoURLFront},
		{SlotIDBack, d.IDPhotoURLBack},
		{SlotLicenseFront, d.LicensePhotoURLFront},
		{SlotLicenseBack, d.LicensePhotoURLBack},
	}
	if d.Vehicle != nil {
		candidates = append(candidates,
			DocumentKey{SlotPropertyCardFront, d.Vehicle.PropertyCardPhotoURLFront},
			DocumentKey{SlotPropertyCardBack, d.Vehicle.PropertyCardPhotoURLBack},
		)
	}
	if d.ContractURL != nil {
		candidates = append(candidates, DocumentKey{SlotContract, *d.ContractURL})
	}
	if d.NotaryPowerURL != nil {
		candidates = append(candidates, DocumentKey{SlotNotaryPower, *d.NotaryPowerURL})
	}

	slots := make([]DocumentKey, 0, len(candidates))
	for _, c := range candidates {
		if c.Key == "" {
			continue
		}
		slots = append(slots, c)
	}
	return slots
}

// DriverDocuments returns slot -> signed URL for every document the driver
// has uploaded. Keys that fail to sign are logged and left out; the rest of
// the batch still comes back.
func (g *Gateway) DriverDocuments(d models.Driver) map[string]string {
	slots := DocumentSlots(d)

	keys := make([]string, 0, len(slots))
	for _, s := range slots {
		keys = append(keys, s.Key)
	}

	urls := make(map[string]string, len(slots))
	for i, signed := range g.SignURLs(keys, DocumentTTL) {
		if signed.Err != nil {
			log.Printf("Error signing document %s: %v", signed.Key, signed.Err)
			continue
		}
		urls[slots[i].Slot] = signed.URL
	}
	return urls
}

// AvatarURL resolves a driver's avatar key. Public avatar buckets get a
// permanent URL, private ones a day-long signed link.
func (g *Gateway) AvatarURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if g.cfg.AvatarsPublic {
		host := strings.TrimPrefix(strings.TrimPrefix(g.cfg.Endpoint, "https://"), "http://")
		return fmt.Sprintf("https://%s.%s/%s", g.cfg.AvatarsBucket, host, key), nil
	}
	return g.signer.presignGet(g.cfg.AvatarsBucket, key, AvatarTTL)
}
