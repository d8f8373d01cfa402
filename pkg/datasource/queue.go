package datasource

// Queue schedules work to run after the current event has been delivered.
type Queue interface {
	Post(task func())
}

// FIFOQueue runs posted tasks in order when drained.
type FIFOQueue struct {
	tasks []func()
}

// Post appends a task.
func (q *FIFOQueue) Post(task func()) {
	if task == nil {
		return
	}
	q.tasks = append(q.tasks, task)
}

// Len reports the number of pending tasks.
func (q *FIFOQueue) Len() int {
	return len(q.tasks)
}

// Drain runs pending tasks, including any they post, and returns how many
// ran.
func (q *FIFOQueue) Drain() int {
	n := 0
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		task()
		n++
	}
	return n
}
