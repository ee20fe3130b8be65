// Package access holds the request-time authorization predicates. They are
// pure functions over already-loaded entities: no persistence, no side
// effects. Callers compose them explicitly and translate a false result
// into the forbidden error that fits the operation.
package access

import "classroom-service/internal/domain/entities"

func IsTeacherRole(user *entities.User) bool {
	return user != nil && user.Role == entities.RoleTeacher
}

func IsStudentRole(user *entities.User) bool {
	return user != nil && user.Role == entities.RoleStudent
}

func OwnsClassroom(user *entities.User, classroom *entities.Classroom) bool {
	return user != nil && classroom != nil && classroom.TeacherId == user.Id
}

func IsEnrolled(user *entities.User, classroom *entities.Classroom) bool {
	if user == nil || classroom == nil {
		return false
	}
	for i := range classroom.EnrolledStudents {
		if classroom.EnrolledStudents[i].Id == user.Id {
			return true
		}
	}
	return false
}
