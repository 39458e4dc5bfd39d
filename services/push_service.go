package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/VangalaLakshmiPravallika/HealthFitnessBackend/models"
)

type DeviceStore interface {
	Upsert(ctx context.Context, d models.Device) error
	ListEnabledByUser(ctx context.Context, user string) ([]models.Device, error)
}

// PushService registers device tokens as SNS platform endpoints and
// publishes notifications to them. All sends are best-effort.
type PushService struct {
	store          DeviceStore
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewPushService(store DeviceStore) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "ap-south-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		store:          store,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: os.Getenv("SNS_FCM_ARN"),
	}, nil
}

func (p *PushService) RegisterDevice(ctx context.Context, user, platform, token string) (*models.Device, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
	default:
		return nil, fmt.Errorf("unknown platform %q: %w", platform, ErrInvalidInput)
	}
	if p.fcmPlatformArn == "" {
		return nil, errors.New("SNS_FCM_ARN not set")
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(p.fcmPlatformArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return nil, err
	}

	h := sha256.Sum256([]byte(token))
	dev := models.Device{
		User:        user,
		Platform:    strings.ToLower(platform),
		TokenHash:   hex.EncodeToString(h[:]),
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
		UpdatedAt:   time.Now(),
	}
	if err := p.store.Upsert(ctx, dev); err != nil {
		return nil, err
	}
	return &dev, nil
}

func (p *PushService) PushToUser(ctx context.Context, user, title, body string, data map[string]string) {
	devices, err := p.store.ListEnabledByUser(ctx, user)
	if err != nil || len(devices) == 0 {
		return
	}

	msg := map[string]any{
		"default": body,
		"GCM": map[string]any{
			"notification": map[string]string{"title": title, "body": body},
			"data":         data,
		},
	}
	raw, _ := json.Marshal(msg)

	for _, d := range devices {
		_, err := p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
		if err != nil {
			log.Printf("push to %s failed: %v", user, err)
		}
	}
}
