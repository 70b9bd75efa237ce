package controllers

import (
	"encoding/json"
	"net/http"

	"futnion_server/apperrors"
	"futnion_server/services"
)

// GenerateAvatarUploadURL generates a presigned URL for avatar uploads
func GenerateAvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInvalidInput, "invalid request body", err))
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		respondError(w, apperrors.New(apperrors.CodeInvalidInput, "fileName and fileType are required"))
		return
	}

	url, key, err := services.GenerateAvatarUploadURL(payload.FileName, payload.FileType)
	if err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInternal, "failed to generate upload URL", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetAvatarReadURL generates a presigned URL for reading an avatar
func GetAvatarReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		respondError(w, apperrors.New(apperrors.CodeInvalidInput, "key is required"))
		return
	}

	url, err := services.GenerateAvatarReadURL(payload.Key)
	if err != nil {
		respondError(w, apperrors.Wrap(apperrors.CodeInternal, "failed to generate read URL", err))
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
