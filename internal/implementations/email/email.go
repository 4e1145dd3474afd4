package email

import (
	"context"
	c "digitalmenu/internal/core/domain/common"
	"digitalmenu/internal/core/domain/user"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

// SESSender emails login codes with an Amazon SES template.
type SESSender struct {
	ses sesAPI
	// This address must be verified with Amazon SES.
	sender            string
	loginCodeTemplate string
	codeTTLMinutes    int
}

func NewSESSender(
	awsConfig aws.Config,
	sender string,
	loginCodeTemplate string,
	codeTTLMinutes int,
) *SESSender {
	return newSESSender(ses.NewFromConfig(awsConfig), sender, loginCodeTemplate, codeTTLMinutes)
}

func newSESSender(client sesAPI, sender string, loginCodeTemplate string, codeTTLMinutes int) *SESSender {
	return &SESSender{
		ses:               client,
		sender:            sender,
		loginCodeTemplate: loginCodeTemplate,
		codeTTLMinutes:    codeTTLMinutes,
	}
}

func (s *SESSender) SendLoginCode(
	ctx context.Context,
	email c.Email,
	code user.LoginCode,
) (d user.LoginCodeDelivery, err error) {
	templateParamsBytes, err := json.Marshal(
		loginCodeTemplateParams{
			Code:       string(code),
			TTLMinutes: s.codeTTLMinutes,
		},
	)
	if err != nil {
		return d, err
	}
	templateParams := string(templateParamsBytes)

	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{string(email)},
			},
			Template:     &s.loginCodeTemplate,
			TemplateData: &templateParams,
		},
	)
	if err != nil {
		return d, err
	}
	return user.LoginCodeDelivery{Channel: user.DeliveryChannelEmail}, nil
}

type loginCodeTemplateParams struct {
	Code       string `json:"code"`
	TTLMinutes int    `json:"ttlMinutes"`
}
