package grpc

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/studentsapi/internal/server/models"
	"google.golang.org/protobuf/types/known/structpb"
)

// studentMap is the wire shape of a student. The id travels as a string
// because Struct numbers are doubles.
func studentMap(s *models.Student) map[string]any {
	return map[string]any{
		"id":         strconv.FormatInt(s.ID, 10),
		"firstname":  s.Firstname,
		"lastname":   s.Lastname,
		"email":      s.Email,
		"address":    s.Address,
		"score":      s.Score,
		"created_at": s.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at": s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func studentToStruct(s *models.Student) (*structpb.Struct, error) {
	return structpb.NewStruct(studentMap(s))
}

func studentsToStruct(list []*models.Student) (*structpb.Struct, error) {
	items := make([]any, 0, len(list))
	for _, s := range list {
		items = append(items, studentMap(s))
	}
	return structpb.NewStruct(map[string]any{"students": items})
}
