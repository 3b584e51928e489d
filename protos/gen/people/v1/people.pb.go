// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: people/v1/people.proto

package peoplev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type GetContractorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractorId  string                 `protobuf:"bytes,1,opt,name=contractor_id,json=contractorId,proto3" json:"contractor_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractorRequest) Reset() {
	*x = GetContractorRequest{}
	mi := &file_people_v1_people_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractorRequest) ProtoMessage() {}

func (x *GetContractorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_people_v1_people_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractorRequest.ProtoReflect.Descriptor instead.
func (*GetContractorRequest) Descriptor() ([]byte, []int) {
	return file_people_v1_people_proto_rawDescGZIP(), []int{0}
}

func (x *GetContractorRequest) GetContractorId() string {
	if x != nil {
		return x.ContractorId
	}
	return ""
}

type GetContractorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ContractorId  string                 `protobuf:"bytes,1,opt,name=contractor_id,json=contractorId,proto3" json:"contractor_id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Timezone      string                 `protobuf:"bytes,3,opt,name=timezone,proto3" json:"timezone,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetContractorResponse) Reset() {
	*x = GetContractorResponse{}
	mi := &file_people_v1_people_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetContractorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetContractorResponse) ProtoMessage() {}

func (x *GetContractorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_people_v1_people_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetContractorResponse.ProtoReflect.Descriptor instead.
func (*GetContractorResponse) Descriptor() ([]byte, []int) {
	return file_people_v1_people_proto_rawDescGZIP(), []int{1}
}

func (x *GetContractorResponse) GetContractorId() string {
	if x != nil {
		return x.ContractorId
	}
	return ""
}

func (x *GetContractorResponse) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *GetContractorResponse) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

var File_people_v1_people_proto protoreflect.FileDescriptor

const file_people_v1_people_proto_rawDesc = "" +
	"\n" +
	"\x16people/v1/people.proto\x12\tpeople.v1\";\n" +
	"\x14GetContractorRequest\x12#\n" +
	"\rcontractor_id\x18\x01 \x01(\tR\fcontractorId\"{\n" +
	"\x15GetContractorResponse\x12#\n" +
	"\rcontractor_id\x18\x01 \x01(\tR\fcontractorId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12\x1a\n" +
	"\btimezone\x18\x03 \x01(\tR\btimezone2c\n" +
	"\rPeopleService\x12R\n" +
	"\rGetContractor\x12\x1f.people.v1.GetContractorRequest\x1a .people.v1.GetContractorResponseBCZAgithub.com/NellsonAss/dd-scheduling/protos/gen/people/v1;peoplev1b\x06proto3"

var (
	file_people_v1_people_proto_rawDescOnce sync.Once
	file_people_v1_people_proto_rawDescData []byte
)

func file_people_v1_people_proto_rawDescGZIP() []byte {
	file_people_v1_people_proto_rawDescOnce.Do(func() {
		file_people_v1_people_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_people_v1_people_proto_rawDesc), len(file_people_v1_people_proto_rawDesc)))
	})
	return file_people_v1_people_proto_rawDescData
}

var file_people_v1_people_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_people_v1_people_proto_goTypes = []any{
	(*GetContractorRequest)(nil),  // 0: people.v1.GetContractorRequest
	(*GetContractorResponse)(nil), // 1: people.v1.GetContractorResponse
}
var file_people_v1_people_proto_depIdxs = []int32{
	0, // 0: people.v1.PeopleService.GetContractor:input_type -> people.v1.GetContractorRequest
	1, // 1: people.v1.PeopleService.GetContractor:output_type -> people.v1.GetContractorResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_people_v1_people_proto_init() }
func file_people_v1_people_proto_init() {
	if File_people_v1_people_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_people_v1_people_proto_rawDesc), len(file_people_v1_people_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_people_v1_people_proto_goTypes,
		DependencyIndexes: file_people_v1_people_proto_depIdxs,
		MessageInfos:      file_people_v1_people_proto_msgTypes,
	}.Build()
	File_people_v1_people_proto = out.File
	file_people_v1_people_proto_goTypes = nil
	file_people_v1_people_proto_depIdxs = nil
}
