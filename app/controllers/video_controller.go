package controllers

import (
	"fmt"
	"sync"
	"time"

	"github.com/AndikaPrasetya/NadaMusik/app/models"
	"github.com/AndikaPrasetya/NadaMusik/app/repository"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/usercontext"
	"github.com/AndikaPrasetya/NadaMusik/internal/pkg/videostore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	videoClient     *videostore.Client
	videoClientErr  error
	videoClientOnce sync.Once
)

// videoStore lazily builds the object-storage client from the environment.
func videoStore() (*videostore.Client, error) {
	videoClientOnce.Do(func() {
		cfg, err := videostore.LoadConfig()
		if err != nil {
			videoClientErr = err
			return
		}
		if !cfg.IsEnabled() {
			videoClientErr = fmt.Errorf("video storage is disabled")
			return
		}
		videoClient, videoClientErr = videostore.NewClient(cfg)
	})
	return videoClient, videoClientErr
}

// hasActiveEnrollment reports whether the student may access a course's
// practice videos.
func hasActiveEnrollment(userID, courseID uint) bool {
	enrollments, err := repository.GetGlobalRepositories().Enrollment.GetByUserID(userID)
	if err != nil {
		log.Errorf("list enrollments for user %d: %v", userID, err)
		return false
	}
	for _, e := range enrollments {
		if e.CourseID == courseID && e.IsActive() {
			return true
		}
	}
	return false
}

// HandleListCourseVideos returns the practice videos of a course the student
// is actively enrolled in.
func HandleListCourseVideos(c *fiber.Ctx) error {
	courseID, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid course id")
	}
	if !hasActiveEnrollment(usercontext.GetUserID(c), courseID) {
		return jsonError(c, fiber.StatusForbidden, "active enrollment required")
	}

	videos, err := repository.GetGlobalRepositories().Video.GetByCourseID(courseID)
	if err != nil {
		log.Errorf("list videos for course %d: %v", courseID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not load videos")
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// HandleVideoPlayback returns a short-lived presigned URL for streaming one
// practice video.
func HandleVideoPlayback(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid video id")
	}

	video, err := repository.GetGlobalRepositories().Video.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "video not found")
	}
	if !hasActiveEnrollment(usercontext.GetUserID(c), video.CourseID) {
		return jsonError(c, fiber.StatusForbidden, "active enrollment required")
	}

	store, err := videoStore()
	if err != nil {
		log.Errorf("video storage unavailable: %v", err)
		return jsonError(c, fiber.StatusServiceUnavailable, "video storage unavailable")
	}

	url, err := store.PlaybackURL(c.Context(), video.ObjectKey)
	if err != nil {
		log.Errorf("presign playback for video %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create playback URL")
	}
	return c.JSON(fiber.Map{"url": url})
}

type videoUploadRequest struct {
	CourseID    uint   `json:"course_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	DurationSec int    `json:"duration_sec"`
}

// HandleAdminCreateVideo registers practice-video metadata and returns a
// presigned PUT URL so the upload bypasses the app server (admin only).
func HandleAdminCreateVideo(c *fiber.Ctx) error {
	var req videoUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.CourseID == 0 || req.Title == "" || req.FileName == "" {
		return jsonError(c, fiber.StatusBadRequest, "course_id, title and file_name are required")
	}
	if req.ContentType == "" {
		req.ContentType = "video/mp4"
	}

	if _, err := repository.GetGlobalRepositories().Course.GetByID(req.CourseID); err != nil {
		return jsonError(c, fiber.StatusNotFound, "course not found")
	}

	store, err := videoStore()
	if err != nil {
		log.Errorf("video storage unavailable: %v", err)
		return jsonError(c, fiber.StatusServiceUnavailable, "video storage unavailable")
	}

	cfg, _ := videostore.LoadConfig()
	now := time.Now()
	objectKey := cfg.GetObjectKey(req.CourseID, now.Year(), int(now.Month()), req.FileName)

	video := &models.PracticeVideo{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		ObjectKey:   objectKey,
		DurationSec: req.DurationSec,
	}
	if err := repository.GetGlobalRepositories().Video.Create(video); err != nil {
		log.Errorf("create video metadata: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "could not register video")
	}

	uploadURL, err := store.UploadURL(c.Context(), objectKey, req.ContentType)
	if err != nil {
		log.Errorf("presign upload for video %d: %v", video.ID, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not create upload URL")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"video":      video,
		"upload_url": uploadURL,
	})
}

// HandleAdminDeleteVideo removes a practice video and its stored object
// (admin only).
func HandleAdminDeleteVideo(c *fiber.Ctx) error {
	id, err := paramUint(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid video id")
	}

	videoRepo := repository.GetGlobalRepositories().Video
	video, err := videoRepo.GetByID(id)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "video not found")
	}

	if store, serr := videoStore(); serr == nil {
		if err := store.DeleteObject(c.Context(), video.ObjectKey); err != nil {
			log.Warnf("delete stored object %s: %v", video.ObjectKey, err)
		}
	}

	if err := videoRepo.Delete(id); err != nil {
		log.Errorf("delete video %d: %v", id, err)
		return jsonError(c, fiber.StatusInternalServerError, "could not delete video")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
