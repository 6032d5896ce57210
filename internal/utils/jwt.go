// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateJWTToken signs a session token for userID with HS256. The token
// carries iss, sub (the user id), iat and exp = now + tokenDuration.
//
//	token, err := utils.GenerateJWTToken("go-blog", 42, 24*time.Hour, signKey)
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID <= 0 || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: signed, UserID: userID}, nil
}

// ValidateAndParseJWTToken checks the signature, the issuer and the expiry of
// a session token and returns it with UserID taken from sub. Tokens signed
// with anything but HS256, or without exp, are rejected.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{SignedString: tokenString}

	token, err := jwt.ParseWithClaims(tokenString, &parsed, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating session token: %w", err)
	}

	parsed.Token = token
	if parsed.UserID, err = parsed.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return parsed, nil
}
