package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const analysisCacheVersion = "v1"

func DocumentAnalysisCacheKey(contentType string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(analysisCacheVersion))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(contentType))))
	h.Write([]byte{0})
	h.Write(data)
	return "analysis:document:" + hex.EncodeToString(h.Sum(nil))
}

func TeamAnalysisCacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(analysisCacheVersion + "\x00" + prompt))
	return "analysis:team:" + hex.EncodeToString(sum[:])
}
