package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskforge/taskboard/internal/core/domain"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

// mongoTask is the persisted document shape. is_urgent is stored as the
// literal "on"/"off" string for compatibility with the existing data set; the
// conversion to the domain bool happens here.
type mongoTask struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	CategoryName    string             `bson:"category_name"`
	TaskName        string             `bson:"task_name"`
	TaskDescription string             `bson:"task_description"`
	IsUrgent        string             `bson:"is_urgent"`
	DueDate         string             `bson:"due_date"`
	CreatedBy       string             `bson:"created_by"`
}

func (mt mongoTask) toDomain() *domain.Task {
	return &domain.Task{
		ID:              mt.ID.Hex(),
		CategoryName:    mt.CategoryName,
		TaskName:        mt.TaskName,
		TaskDescription: mt.TaskDescription,
		IsUrgent:        domain.Urgency(mt.IsUrgent).Bool(),
		DueDate:         mt.DueDate,
		CreatedBy:       mt.CreatedBy,
	}
}

func taskDoc(t *domain.Task) mongoTask {
	return mongoTask{
		CategoryName:    t.CategoryName,
		TaskName:        t.TaskName,
		TaskDescription: t.TaskDescription,
		IsUrgent:        string(domain.UrgencyFromBool(t.IsUrgent)),
		DueDate:         t.DueDate,
		CreatedBy:       t.CreatedBy,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, taskDoc(t))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *t
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTask
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return mt.toDomain(), nil
}

// List returns all tasks in natural (insertion) order.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []*domain.Task
	for cur.Next(ctx) {
		var mt mongoTask
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Replace overwrites the whole document (full replace, not a patch).
func (r *TaskRepository) Replace(ctx context.Context, id string, t *domain.Task) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, taskDoc(t))
	if err != nil {
		return fmt.Errorf("replace task: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTaskNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
