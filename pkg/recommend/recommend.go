// Package recommend is a deterministic placeholder for a future scoring
// service: category partitioning, no ranking model, no feedback signals.
package recommend

import "streamly-backend/pkg/models"

// ForVideo partitions videos into "same category as the target" followed by
// everything else, excluding the target itself, preserving the input's
// relative order, truncated to limit. ok is false when videoID is not in the
// set; callers fall back to the newest videos.
func ForVideo(videos []models.Video, videoID uint, limit int) (result []models.Video, ok bool) {
	var current *models.Video
	for i := range videos {
		if videos[i].ID == videoID {
			current = &videos[i]
			break
		}
	}
	if current == nil {
		return nil, false
	}

	same := make([]models.Video, 0, len(videos))
	others := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.ID == videoID {
			continue
		}
		if v.Category == current.Category {
			same = append(same, v)
		} else {
			others = append(others, v)
		}
	}

	result = append(same, others...)
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, true
}
